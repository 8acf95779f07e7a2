package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"menu-digital/models"
)

func TestOccupyTable(t *testing.T) {
	db := setupTestDB(t, "session_occupy")
	router, _ := setupRouter(db)

	table := models.Table{Number: "5", Capacity: 4, Location: "indoor", Status: models.TableStatusFree}
	db.Create(&table)

	w := doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/occupy", table.ID), map[string]interface{}{
		"people": 2,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	assert.Equal(t, "Table occupied", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "occupied", data["status"])

	session := data["active_session"].(map[string]interface{})
	assert.EqualValues(t, 2, session["people"])
	assert.EqualValues(t, 0, session["total"])

	// Meja sudah occupied -> 409
	w = doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/occupy", table.ID), map[string]interface{}{
		"people": 3,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Meja tidak dikenal -> 404
	w = doRequest(t, router, "POST", "/tables/999/occupy", map[string]interface{}{"people": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Body tanpa people -> 400
	w = doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/occupy", table.ID), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReleaseTable(t *testing.T) {
	db := setupTestDB(t, "session_release")
	router, svc := setupRouter(db)

	table := models.Table{Number: "5", Capacity: 4, Location: "indoor", Status: models.TableStatusFree}
	db.Create(&table)

	_, err := svc.Occupy(table.ID, 2)
	assert.NoError(t, err)

	w := doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/release", table.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	assert.Equal(t, "Table released", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "free", data["status"])
	assert.Nil(t, data["active_session_id"])

	// Release kedua tetap sukses (idempotent)
	w = doRequest(t, router, "POST", fmt.Sprintf("/tables/%d/release", table.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "free", data["status"])

	w = doRequest(t, router, "POST", "/tables/999/release", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
