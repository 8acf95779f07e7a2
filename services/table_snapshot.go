package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"menu-digital/models"
	"menu-digital/monitoring"
)

// Snapshot adalah proyeksi read-only yang di-poll dashboard staff dan
// layar customer: semua meja urut nomor, masing-masing dengan sesi open,
// reservasi mendatang (ascending), dan order terakhir beserta item.
// Tidak ada mutasi di sini; konsistensinya "menyusul dalam satu interval
// polling", client melakukan diff terhadap snapshot sebelumnya sendiri.
func (s *TableService) Snapshot() ([]models.Table, error) {
	now := time.Now()

	var tables []models.Table
	err := s.DB.
		Preload("ActiveSession", "closed = ?", false).
		Preload("Reservations", func(db *gorm.DB) *gorm.DB {
			return db.Where("reserved_for >= ?", now).Order("reserved_for ASC")
		}).
		Preload("LastOrder.OrderItems").
		Preload("QRCode").
		Order("number ASC").
		Find(&tables).Error

	monitoring.RecordSnapshot()
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// FindByQRCode -> resolve code dari stiker QR ke meja. Nomor meja tetap
// jadi identifier eksternal; code hanya target URL.
func (s *TableService) FindByQRCode(code string) (*models.Table, error) {
	var qr models.TableQRCode
	if err := s.DB.Where("code = ?", code).First(&qr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "qr code", ID: 0}
		}
		return nil, err
	}
	return s.reload(qr.TableID)
}

// UpcomingReservations -> daftar reservasi mendatang lintas meja
func (s *TableService) UpcomingReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.
		Where("reserved_for >= ?", time.Now()).
		Order("reserved_for ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
