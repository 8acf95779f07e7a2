package services

import (
	"fmt"

	"menu-digital/models"
)

// Tiga jenis error domain yang bisa dipulihkan caller (spesifik vs error
// infrastruktur yang generic): input salah, entitas tidak ada, atau
// transisi tidak sah dari status sekarang.

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

type ConflictError struct {
	TableID uint
	Status  models.TableStatus
	Msg     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (table %d, status %s)", e.Msg, e.TableID, e.Status)
}
