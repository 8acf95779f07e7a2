package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"menu-digital/events"
	"menu-digital/services"
	"menu-digital/utils"
)

type ReservationController struct {
	Service *services.TableService
}

func NewReservationController(svc *services.TableService) *ReservationController {
	return &ReservationController{Service: svc}
}

// ReserveTable -> booking meja free untuk waktu yang akan datang.
// Statusnya langsung reserved begitu booking tercatat, berapa pun
// jauhnya tanggalnya.
func (rc *ReservationController) ReserveTable(c *gin.Context) {
	tableID, ok := paramID(c, "table_id")
	if !ok {
		return
	}

	var req struct {
		CustomerName string    `json:"customer_name" binding:"required"`
		Phone        string    `json:"phone" binding:"required"`
		People       int       `json:"people" binding:"required"`
		ReservedFor  time.Time `json:"reserved_for" binding:"required"`
		Notes        string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := rc.Service.Reserve(tableID, req.CustomerName, req.Phone, req.People, req.ReservedFor, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastReservationCreate(table)
	utils.RespondJSON(c, http.StatusCreated, "Table reserved", table)
}

// GetUpcomingReservations -> daftar reservasi mendatang untuk staff
func (rc *ReservationController) GetUpcomingReservations(c *gin.Context) {
	reservations, err := rc.Service.UpcomingReservations()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}
