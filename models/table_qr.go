package models

import "time"

// TableQRCode adalah identifier QR milik satu meja. Code ini yang
// di-encode jadi URL di stiker meja; ikut terhapus saat mejanya dihapus.
type TableQRCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TableID   uint      `gorm:"not null;uniqueIndex" json:"table_id"`
	Code      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
