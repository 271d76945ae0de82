package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/httpresp"
	"github.com/eclipse7-9/enlistment-layout/internal/middleware"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

type OrderItemHandler struct {
	db *gorm.DB
}

func NewOrderItemHandler(db *gorm.DB) *OrderItemHandler {
	return &OrderItemHandler{db: db}
}

// ListByOrder devuelve los ítems de un pedido del usuario.
func (h *OrderItemHandler) ListByOrder(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var order models.Order
	if err := h.db.First(&order, id).Error; err != nil {
		httperr.NotFound(c, "order_not_found", "Pedido no encontrado.")
		return
	}

	if order.RequesterID != caller.ID && !caller.IsAdmin() {
		httperr.Forbidden(c, "order_forbidden", "El pedido no te pertenece.")
		return
	}

	var items []models.OrderItem
	if err := h.db.Where("order_id = ?", order.ID).Order("id ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_order_items", "No se pudieron listar los ítems.")
		return
	}

	httpresp.List(c, items)
}

func (h *OrderItemHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var item models.OrderItem
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "order_item_not_found", "Ítem no encontrado.")
		return
	}

	var order models.Order
	if err := h.db.First(&order, item.OrderID).Error; err == nil {
		if order.RequesterID != caller.ID && !caller.IsAdmin() {
			httperr.Forbidden(c, "order_forbidden", "El pedido no te pertenece.")
			return
		}
	}

	httpresp.OK(c, item)
}
