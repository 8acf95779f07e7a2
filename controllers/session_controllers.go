package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-digital/events"
	"menu-digital/services"
	"menu-digital/utils"
)

type SessionController struct {
	Service *services.TableService
}

func NewSessionController(svc *services.TableService) *SessionController {
	return &SessionController{Service: svc}
}

// OccupyTable -> meja free jadi occupied dan sesi baru dibuka.
// Dua occupy bersamaan di meja yang sama: satu menang, satunya 409.
func (sc *SessionController) OccupyTable(c *gin.Context) {
	tableID, ok := paramID(c, "table_id")
	if !ok {
		return
	}

	var req struct {
		People int `json:"people" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := sc.Service.Occupy(tableID, req.People)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastSessionOpen(table)
	utils.RespondJSON(c, http.StatusOK, "Table occupied", table)
}

// ReleaseTable -> paksa meja kembali free dan tutup sesi open kalau ada.
// Idempotent; juga dipakai untuk membatalkan reserved secara manual.
func (sc *SessionController) ReleaseTable(c *gin.Context) {
	tableID, ok := paramID(c, "table_id")
	if !ok {
		return
	}

	table, err := sc.Service.Release(tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastSessionClose(table)
	utils.RespondJSON(c, http.StatusOK, "Table released", table)
}
