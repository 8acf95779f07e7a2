package models

import "time"

// Reservation adalah booking meja untuk waktu yang akan datang.
// Setelah dibuat row ini read-only di core; edit/cancel ada di CRUD luar.
type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TableID      uint      `gorm:"not null;index" json:"table_id"`
	CustomerName string    `gorm:"type:varchar(100);not null" json:"customer_name"`
	Phone        string    `gorm:"type:varchar(30);not null" json:"phone"`
	People       int       `gorm:"not null" json:"people"`
	ReservedFor  time.Time `gorm:"not null;index" json:"reserved_for"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
