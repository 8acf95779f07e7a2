package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-digital/events"
	"menu-digital/models"
	"menu-digital/services"
	"menu-digital/utils"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{Service: svc}
}

// CreateTable -> menambahkan meja baru (status free + QR code)
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Number   string `json:"number" binding:"required"`
		Capacity int    `json:"capacity" binding:"required"`
		Location string `json:"location" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Service.CreateTable(req.Number, req.Location, req.Capacity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastTableCreate(table)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> snapshot seluruh meja untuk polling dashboard/customer.
// Dipakai dua konsumen dengan bentuk response yang sama.
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Service.Snapshot()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// UpdateTable -> ubah atribut meja; status hanya untuk koreksi admin
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID, ok := paramID(c, "table_id")
	if !ok {
		return
	}

	var req struct {
		Number   *string `json:"number"`
		Capacity *int    `json:"capacity"`
		Location *string `json:"location"`
		Status   *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	upd := services.TableUpdate{
		Number:   req.Number,
		Capacity: req.Capacity,
		Location: req.Location,
	}
	if req.Status != nil {
		status := models.TableStatus(*req.Status)
		upd.Status = &status
	}

	table, err := tc.Service.UpdateTable(tableID, upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastTableUpdate(table)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja; gagal kalau masih ada sesi open
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID, ok := paramID(c, "table_id")
	if !ok {
		return
	}

	if err := tc.Service.DeleteTable(tableID); err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastTableDelete(tableID)
	utils.InfoLogger.Printf("Table %d deleted", tableID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": tableID,
	})
}

// ScanTable -> resolve QR code dari stiker meja ke detail meja
func (tc *TableController) ScanTable(c *gin.Context) {
	code := c.Param("code")

	table, err := tc.Service.FindByQRCode(code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}
