package models

import "time"

// Order dibuat oleh subsistem pemesanan (kitchen/customer screen).
// Core ini hanya mengonsumsi order lewat AttachOrder: order menjadi
// last_order meja dan nilainya masuk ke running total sesi yang open.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableID     *uint       `gorm:"index" json:"table_id,omitempty"`
	SessionID   *uint       `gorm:"index" json:"session_id,omitempty"`
	Status      string      `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}
