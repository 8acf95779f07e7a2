package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"menu-digital/models"
	"menu-digital/monitoring"
	"menu-digital/utils"
)

// TableService adalah satu-satunya jalur transisi status meja.
// Semua pengecekan legalitas transisi (occupy/release/reserve) ada di sini,
// bukan tersebar di controller.
type TableService struct {
	DB *gorm.DB

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{
		DB:    db,
		locks: make(map[uint]*sync.Mutex),
	}
}

// lockTable -> serialisasi per meja. Di atas ini transaksi DB dengan
// row lock tetap jalan, supaya deployment multi-proses di MySQL/Postgres
// juga aman.
func (s *TableService) lockTable(tableID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[tableID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[tableID] = l
	}
	return l
}

func (s *TableService) lockedTable(tx *gorm.DB, tableID uint) (*models.Table, error) {
	var table models.Table
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&table, tableID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "table", ID: tableID}
		}
		return nil, err
	}
	return &table, nil
}

// CreateTable -> menambahkan meja baru (status free) beserta QR code-nya
func (s *TableService) CreateTable(number, location string, capacity int) (*models.Table, error) {
	if strings.TrimSpace(number) == "" || strings.TrimSpace(location) == "" {
		return nil, &ValidationError{Msg: "table number and location are required"}
	}
	if capacity < 1 {
		return nil, &ValidationError{Msg: "capacity must be at least 1"}
	}

	table := models.Table{
		Number:   strings.TrimSpace(number),
		Capacity: capacity,
		Location: strings.TrimSpace(location),
		Status:   models.TableStatusFree,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Table{}).Where("number = ?", table.Number).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &ConflictError{Status: models.TableStatusFree, Msg: "table number already in use"}
		}
		if err := tx.Create(&table).Error; err != nil {
			return err
		}
		qr := models.TableQRCode{
			TableID: table.ID,
			Code:    uuid.NewString(),
		}
		if err := tx.Create(&qr).Error; err != nil {
			return err
		}
		table.QRCode = &qr
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New table created: %s (capacity=%d, location=%s)", table.Number, table.Capacity, table.Location)
	return &table, nil
}

// TableUpdate adalah field yang boleh diubah lewat UpdateTable.
// Status di sini hanya untuk koreksi administratif, bukan bagian dari
// state machine normal.
type TableUpdate struct {
	Number   *string
	Capacity *int
	Location *string
	Status   *models.TableStatus
}

func (s *TableService) UpdateTable(tableID uint, upd TableUpdate) (*models.Table, error) {
	if upd.Capacity != nil && *upd.Capacity < 1 {
		return nil, &ValidationError{Msg: "capacity must be at least 1"}
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, &ValidationError{Msg: "unknown table status"}
	}

	lock := s.lockTable(tableID)
	lock.Lock()
	defer lock.Unlock()

	var result *models.Table
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		table, err := s.lockedTable(tx, tableID)
		if err != nil {
			return err
		}

		if upd.Number != nil {
			table.Number = strings.TrimSpace(*upd.Number)
		}
		if upd.Capacity != nil {
			table.Capacity = *upd.Capacity
		}
		if upd.Location != nil {
			table.Location = strings.TrimSpace(*upd.Location)
		}
		if upd.Status != nil {
			table.Status = *upd.Status
			if table.Status != models.TableStatusOccupied {
				table.ActiveSessionID = nil
			}
		}

		return tx.Save(table).Error
	})
	if err != nil {
		return nil, err
	}

	result, err = s.reload(tableID)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTable -> gagal conflict kalau masih ada sesi open; QR code ikut
// terhapus. Histori sesi/reservasi/order dibiarkan (soft reference).
func (s *TableService) DeleteTable(tableID uint) error {
	lock := s.lockTable(tableID)
	lock.Lock()
	defer lock.Unlock()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		table, err := s.lockedTable(tx, tableID)
		if err != nil {
			return err
		}

		var open int64
		if err := tx.Model(&models.TableSession{}).
			Where("table_id = ? AND closed = ?", tableID, false).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return &ConflictError{
				TableID: tableID,
				Status:  table.Status,
				Msg:     "table has an open session",
			}
		}

		if err := tx.Where("table_id = ?", tableID).Delete(&models.TableQRCode{}).Error; err != nil {
			return err
		}
		return tx.Delete(table).Error
	})
}

// Occupy -> free => occupied, buka sesi baru.
// Efeknya atomic: pembaca tidak pernah melihat occupied tanpa sesi aktif.
func (s *TableService) Occupy(tableID uint, people int) (*models.Table, error) {
	if people < 1 {
		return nil, &ValidationError{Msg: "people must be at least 1"}
	}

	lock := s.lockTable(tableID)
	lock.Lock()
	defer lock.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		table, err := s.lockedTable(tx, tableID)
		if err != nil {
			return err
		}
		if !table.Status.CanOccupy() {
			return &ConflictError{
				TableID: tableID,
				Status:  table.Status,
				Msg:     "table not available",
			}
		}

		session := models.TableSession{
			TableID:   tableID,
			StartedAt: time.Now(),
			People:    people,
			Total:     0,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		return tx.Model(table).Updates(map[string]interface{}{
			"status":            models.TableStatusOccupied,
			"active_session_id": session.ID,
		}).Error
	})

	monitoring.RecordTransition("occupy", err)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %d occupied (people=%d)", tableID, people)
	return s.reload(tableID)
}

// Release -> paksa meja kembali free; kalau ada sesi open, sesi ditutup.
// Sengaja idempotent: release meja tanpa sesi tetap sukses dan dipakai
// sebagai jalur recovery (termasuk membatalkan status reserved).
func (s *TableService) Release(tableID uint) (*models.Table, error) {
	lock := s.lockTable(tableID)
	lock.Lock()
	defer lock.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		table, err := s.lockedTable(tx, tableID)
		if err != nil {
			return err
		}

		var session models.TableSession
		findErr := tx.Where("table_id = ? AND closed = ?", tableID, false).First(&session).Error
		if findErr == nil {
			now := time.Now()
			if err := tx.Model(&session).Updates(map[string]interface{}{
				"closed":    true,
				"closed_at": now,
			}).Error; err != nil {
				return err
			}
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		return tx.Model(table).Updates(map[string]interface{}{
			"status":            models.TableStatusFree,
			"active_session_id": nil,
		}).Error
	})

	monitoring.RecordTransition("release", err)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %d released", tableID)
	return s.reload(tableID)
}

// Reserve -> free => reserved, langsung saat booking dibuat, berapa pun
// jauhnya ReservedFor. Tidak ada expiry/auto-advance otomatis; staff yang
// memutuskan lewat Occupy atau Release.
func (s *TableService) Reserve(tableID uint, customerName, phone string, people int, reservedFor time.Time, notes string) (*models.Table, error) {
	if strings.TrimSpace(customerName) == "" || strings.TrimSpace(phone) == "" {
		return nil, &ValidationError{Msg: "customer name and phone are required"}
	}
	if reservedFor.IsZero() {
		return nil, &ValidationError{Msg: "reservation time is required"}
	}
	if people < 1 {
		return nil, &ValidationError{Msg: "people must be at least 1"}
	}

	lock := s.lockTable(tableID)
	lock.Lock()
	defer lock.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		table, err := s.lockedTable(tx, tableID)
		if err != nil {
			return err
		}
		if !table.Status.CanReserve() {
			return &ConflictError{
				TableID: tableID,
				Status:  table.Status,
				Msg:     "table not available",
			}
		}

		reservation := models.Reservation{
			TableID:      tableID,
			CustomerName: strings.TrimSpace(customerName),
			Phone:        strings.TrimSpace(phone),
			People:       people,
			ReservedFor:  reservedFor,
			Notes:        notes,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		return tx.Model(table).Update("status", models.TableStatusReserved).Error
	})

	monitoring.RecordTransition("reserve", err)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %d reserved for %s (%s)", tableID, customerName, reservedFor.Format(time.RFC3339))
	return s.reload(tableID)
}

// AttachOrder -> jadikan order sebagai last order meja; kalau ada sesi
// open, nilai order ditambahkan ke running total dan order di-link ke
// sesi itu. Order ke meja yang tidak occupied tetap dicatat (non-fatal),
// hanya tidak masuk total mana pun.
func (s *TableService) AttachOrder(tableID uint, order *models.Order) error {
	lock := s.lockTable(tableID)
	lock.Lock()
	defer lock.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		table, err := s.lockedTable(tx, tableID)
		if err != nil {
			return err
		}

		if err := tx.Model(table).Update("last_order_id", order.ID).Error; err != nil {
			return err
		}

		var session models.TableSession
		findErr := tx.Where("table_id = ? AND closed = ?", tableID, false).First(&session).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return nil
		}
		if findErr != nil {
			return findErr
		}

		if err := tx.Model(&session).Update("total", session.Total+order.TotalAmount).Error; err != nil {
			return err
		}
		return tx.Model(order).Update("session_id", session.ID).Error
	})

	monitoring.RecordOrderAttach(err)
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Order %d attached to table %d (amount=%.2f)", order.ID, tableID, order.TotalAmount)
	return nil
}

// reload mengambil ulang meja dengan sesi aktifnya untuk response
func (s *TableService) reload(tableID uint) (*models.Table, error) {
	var table models.Table
	err := s.DB.Preload("ActiveSession").Preload("QRCode").First(&table, tableID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "table", ID: tableID}
		}
		return nil, err
	}
	return &table, nil
}
