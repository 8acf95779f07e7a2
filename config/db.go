package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"menu-digital/models"
)

// InitDB membuka koneksi sesuai environment:
// DATABASE_URL -> Postgres, DB_DRIVER=sqlite -> file lokal,
// selain itu MySQL dari variabel DB_*.
func InitDB() (*gorm.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return gorm.Open(postgres.Open(url), &gorm.Config{})
	}

	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "menu_digital.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	user := getEnv("DB_USER", "root")
	pass := os.Getenv("DB_PASSWORD")
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	name := getEnv("DB_NAME", "menu_digital")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// AutoMigrate menjalankan migrasi seluruh model
func AutoMigrate(db *gorm.DB) error {
	// Table menunjuk ke TableSession dan Order (active_session_id,
	// last_order_id), jadi keduanya dimigrasi lebih dulu.
	return db.AutoMigrate(
		&models.User{},
		&models.TableSession{},
		&models.Order{},
		&models.OrderItem{},
		&models.Table{},
		&models.TableQRCode{},
		&models.Reservation{},
		&models.SessionAudit{},
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
