package models

import (
	"time"

	"gorm.io/datatypes"
)

// SessionAudit dicatat oleh session auditor setiap kali running total
// sebuah sesi tidak cocok dengan jumlah order yang ter-link.
type SessionAudit struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	SessionID     uint           `gorm:"not null;index" json:"session_id"`
	RecordedTotal float64        `gorm:"type:decimal(10,2);not null" json:"recorded_total"`
	ComputedTotal float64        `gorm:"type:decimal(10,2);not null" json:"computed_total"`
	Details       datatypes.JSON `json:"details"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
}
