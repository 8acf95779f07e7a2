package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"menu-digital/controllers"
	"menu-digital/models"
	"menu-digital/services"
	"menu-digital/utils"
)

// setupTestDB -> SQLite in-memory dengan nama unik per test
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.TableSession{},
		&models.Order{},
		&models.OrderItem{},
		&models.Table{},
		&models.TableQRCode{},
		&models.Reservation{},
		&models.SessionAudit{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// setupRouter memasang route tanpa middleware auth; yang diuji di sini
// perilaku controller, bukan autentikasi
func setupRouter(db *gorm.DB) (*gin.Engine, *services.TableService) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	svc := services.NewTableService(db)
	tableCtrl := controllers.NewTableController(svc)
	sessionCtrl := controllers.NewSessionController(svc)
	reservationCtrl := controllers.NewReservationController(svc)
	orderCtrl := controllers.NewOrderController(db, svc)

	router.GET("/tables", tableCtrl.GetAllTables)
	router.POST("/tables", tableCtrl.CreateTable)
	router.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	router.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	router.GET("/tables/scan/:code", tableCtrl.ScanTable)
	router.POST("/tables/:table_id/occupy", sessionCtrl.OccupyTable)
	router.POST("/tables/:table_id/release", sessionCtrl.ReleaseTable)
	router.POST("/tables/:table_id/reserve", reservationCtrl.ReserveTable)
	router.GET("/reservations", reservationCtrl.GetUpcomingReservations)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	return router, svc
}

func doRequest(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return response
}
