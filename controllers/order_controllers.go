package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"menu-digital/events"
	"menu-digital/models"
	"menu-digital/services"
	"menu-digital/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Service *services.TableService
}

func NewOrderController(db *gorm.DB, svc *services.TableService) *OrderController {
	return &OrderController{DB: db, Service: svc}
}

// CreateOrder -> buat order dengan item denormalized (nama + harga),
// lalu link ke meja lewat AttachOrder kalau table_id diisi. Order tanpa
// meja (takeaway/retroaktif) tetap sah.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ItemReq struct {
		Name     string  `json:"name" binding:"required"`
		Quantity int     `json:"quantity" binding:"required"`
		Price    float64 `json:"price"`
		Notes    string  `json:"notes"`
	}

	var req struct {
		TableID *uint     `json:"table_id"`
		Items   []ItemReq `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order must contain at least one item"))
		return
	}
	for _, item := range req.Items {
		if item.Quantity < 1 || item.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item quantity or price"))
			return
		}
	}

	order := models.Order{
		TableID:   req.TableID,
		Status:    "open",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, item := range req.Items {
			total += float64(item.Quantity) * item.Price
			orderItem := models.OrderItem{
				OrderID:  order.ID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Notes:    item.Notes,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		order.TotalAmount = total
		return tx.Model(&order).Update("total_amount", total).Error
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Link ke meja; tanpa sesi open nilainya tidak masuk total mana pun
	if req.TableID != nil {
		if err := oc.Service.AttachOrder(*req.TableID, &order); err != nil {
			respondServiceError(c, err)
			return
		}
		events.BroadcastOrderAttached(*req.TableID, &order)
	}

	if err := oc.DB.Preload("OrderItems").First(&order, order.ID).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID -> detail 1 order beserta item
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	var order models.Order
	if err := oc.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Entity: "order", ID: orderID})
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
