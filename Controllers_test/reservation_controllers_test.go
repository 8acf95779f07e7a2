package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"menu-digital/models"
)

func TestReserveTable(t *testing.T) {
	db := setupTestDB(t, "reservation_create")
	router, _ := setupRouter(db)

	table := models.Table{Number: "3", Capacity: 4, Location: "indoor", Status: models.TableStatusFree}
	db.Create(&table)

	reservedFor := time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339)
	w := doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/reserve", table.ID), map[string]interface{}{
		"customer_name": "João Silva",
		"phone":         "+5511999999999",
		"people":        4,
		"reserved_for":  reservedFor,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	response := parseResponse(t, w)
	assert.Equal(t, "Table reserved", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "reserved", data["status"])

	// Walk-in occupy di meja reserved -> 409
	w = doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/occupy", table.ID), map[string]interface{}{
		"people": 4,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Reserve kedua -> 409
	w = doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/reserve", table.ID), map[string]interface{}{
		"customer_name": "Maria",
		"phone":         "+5511888888888",
		"people":        2,
		"reserved_for":  reservedFor,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReserveTableValidation(t *testing.T) {
	db := setupTestDB(t, "reservation_validation")
	router, _ := setupRouter(db)

	table := models.Table{Number: "3", Capacity: 4, Location: "indoor", Status: models.TableStatusFree}
	db.Create(&table)

	// customer_name hilang -> 400
	w := doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/reserve", table.ID), map[string]interface{}{
		"phone":        "+5511999999999",
		"people":       4,
		"reserved_for": time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// timestamp hilang -> 400
	w = doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/reserve", table.ID), map[string]interface{}{
		"customer_name": "João Silva",
		"phone":         "+5511999999999",
		"people":        4,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, "POST", "/tables/999/reserve", map[string]interface{}{
		"customer_name": "João Silva",
		"phone":         "+5511999999999",
		"people":        4,
		"reserved_for":  time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUpcomingReservations(t *testing.T) {
	db := setupTestDB(t, "reservation_list")
	router, _ := setupRouter(db)

	table := models.Table{Number: "3", Capacity: 4, Location: "indoor", Status: models.TableStatusFree}
	db.Create(&table)

	db.Create(&models.Reservation{TableID: table.ID, CustomerName: "Ana", Phone: "x", People: 2, ReservedFor: time.Now().Add(-time.Hour)})
	db.Create(&models.Reservation{TableID: table.ID, CustomerName: "Bruno", Phone: "x", People: 2, ReservedFor: time.Now().Add(time.Hour)})

	w := doRequest(t, router, "GET", "/reservations", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].([]interface{})

	// Hanya reservasi mendatang
	assert.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Bruno", first["customer_name"])
}
