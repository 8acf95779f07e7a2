package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"menu-digital/models"
	"menu-digital/utils"
)

// SessionAuditor menghitung ulang running total tiap sesi open dari
// order yang ter-link dan mengoreksi selisih. Running total hanya diisi
// lewat AttachOrder; job ini menutup celah kalau ada order yang masuk
// di luar jalur itu.
type SessionAuditor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewSessionAuditor(db *gorm.DB) *SessionAuditor {
	return &SessionAuditor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Minute,
	}
}

func (sa *SessionAuditor) Start() {
	go func() {
		ticker := time.NewTicker(sa.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sa.AuditOnce()
			case <-sa.StopChan:
				return
			}
		}
	}()
}

func (sa *SessionAuditor) Stop() {
	close(sa.StopChan)
}

// AuditOnce memeriksa semua sesi open dan mengembalikan jumlah koreksi
func (sa *SessionAuditor) AuditOnce() int {
	var sessions []models.TableSession
	if err := sa.DB.Where("closed = ?", false).Find(&sessions).Error; err != nil {
		utils.ErrorLogger.Printf("Session audit: error fetching open sessions: %v", err)
		return 0
	}

	corrected := 0
	for _, session := range sessions {
		if sa.auditSession(session) {
			corrected++
		}
	}

	if corrected > 0 {
		utils.InfoLogger.Printf("Session audit corrected %d session totals", corrected)
	}
	return corrected
}

func (sa *SessionAuditor) auditSession(session models.TableSession) bool {
	var computed float64
	err := sa.DB.Model(&models.Order{}).
		Where("session_id = ?", session.ID).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&computed).Error
	if err != nil {
		utils.ErrorLogger.Printf("Session audit: error computing total for session %d: %v", session.ID, err)
		return false
	}

	if computed == session.Total {
		return false
	}

	err = sa.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TableSession{}).
			Where("id = ? AND closed = ?", session.ID, false).
			Update("total", computed).Error; err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]interface{}{
			"table_id":   session.TableID,
			"drift":      computed - session.Total,
			"audited_at": time.Now().Format(time.RFC3339),
		})
		audit := models.SessionAudit{
			SessionID:     session.ID,
			RecordedTotal: session.Total,
			ComputedTotal: computed,
			Details:       datatypes.JSON(details),
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		utils.ErrorLogger.Printf("Session audit: error correcting session %d: %v", session.ID, err)
		return false
	}

	utils.InfoLogger.Printf("Session %d total corrected: %.2f -> %.2f", session.ID, session.Total, computed)
	return true
}
