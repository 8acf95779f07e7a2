package models

import "time"

// TableStatus adalah status lifecycle meja.
type TableStatus string

const (
	TableStatusFree     TableStatus = "free"
	TableStatusOccupied TableStatus = "occupied"
	TableStatusReserved TableStatus = "reserved"
)

// CanOccupy -> hanya meja free yang boleh diisi. Meja reserved harus
// di-release dulu oleh staff sebelum walk-in.
func (s TableStatus) CanOccupy() bool {
	return s == TableStatusFree
}

// CanReserve -> reservasi hanya untuk meja free.
func (s TableStatus) CanReserve() bool {
	return s == TableStatusFree
}

func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusFree, TableStatusOccupied, TableStatusReserved:
		return true
	}
	return false
}

// Table merepresentasikan satu meja fisik.
// Invariant: Status == occupied <=> ActiveSessionID terisi.
type Table struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Number          string        `gorm:"type:varchar(50);not null;uniqueIndex" json:"number"`
	Capacity        int           `gorm:"not null" json:"capacity"`
	Location        string        `gorm:"type:varchar(100);not null" json:"location"`
	Status          TableStatus   `gorm:"type:varchar(20);not null;default:'free'" json:"status"`
	ActiveSessionID *uint         `gorm:"index" json:"active_session_id,omitempty"`
	ActiveSession   *TableSession `gorm:"foreignKey:ActiveSessionID" json:"active_session,omitempty"`
	LastOrderID     *uint         `gorm:"index" json:"last_order_id,omitempty"`
	LastOrder       *Order        `gorm:"foreignKey:LastOrderID" json:"last_order,omitempty"`
	QRCode          *TableQRCode  `gorm:"foreignKey:TableID" json:"qr_code,omitempty"`
	Reservations    []Reservation `gorm:"foreignKey:TableID" json:"reservations,omitempty"`
	CreatedAt       time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null" json:"updated_at"`
}
