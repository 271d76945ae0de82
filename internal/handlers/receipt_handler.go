package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/httpresp"
	"github.com/eclipse7-9/enlistment-layout/internal/middleware"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

type ReceiptHandler struct {
	db *gorm.DB
}

func NewReceiptHandler(db *gorm.DB) *ReceiptHandler {
	return &ReceiptHandler{db: db}
}

// List devuelve los recibos de los pedidos del usuario; admin ve todos.
func (h *ReceiptHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	q := h.db.Order("created_at DESC")
	if !caller.IsAdmin() {
		q = q.Joins("JOIN orders ON orders.id = receipts.order_id").
			Where("orders.requester_id = ?", caller.ID)
	}

	var receipts []models.Receipt
	if err := q.Find(&receipts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_receipts", "No se pudieron listar los recibos.")
		return
	}

	httpresp.List(c, receipts)
}

func (h *ReceiptHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var receipt models.Receipt
	if err := h.db.First(&receipt, uint(id)).Error; err != nil {
		httperr.NotFound(c, "receipt_not_found", "Recibo no encontrado.")
		return
	}

	var order models.Order
	if err := h.db.First(&order, receipt.OrderID).Error; err == nil {
		if order.RequesterID != caller.ID && !caller.IsAdmin() {
			httperr.Forbidden(c, "receipt_forbidden", "El recibo no te pertenece.")
			return
		}
	}

	httpresp.OK(c, receipt)
}
