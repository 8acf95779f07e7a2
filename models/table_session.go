package models

import "time"

// TableSession adalah satu interval occupancy di sebuah meja.
// Maksimal satu sesi open (Closed == false) per meja; row tidak pernah
// dihapus karena dipakai sebagai histori.
type TableSession struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TableID   uint       `gorm:"not null;index" json:"table_id"`
	StartedAt time.Time  `gorm:"not null" json:"started_at"`
	People    int        `gorm:"not null" json:"people"`
	Total     float64    `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	Closed    bool       `gorm:"not null;default:false;index" json:"closed"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
