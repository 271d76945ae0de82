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

type OrderHandler struct {
	db *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

type UpdateOrderRequest struct {
	Status *string `json:"status"`
}

var orderStatuses = map[string]bool{
	models.OrderPending:   true,
	models.OrderInProcess: true,
	models.OrderCancelled: true,
	models.OrderPaid:      true,
}

// List devuelve los pedidos del usuario; un admin ve todos.
func (h *OrderHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	q := h.db.Order("created_at DESC")
	if !caller.IsAdmin() {
		q = q.Where("requester_id = ?", caller.ID)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		httperr.Internal(c, "failed_to_list_orders", "No se pudieron listar los pedidos.")
		return
	}

	httpresp.List(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	order, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	var items []models.OrderItem
	h.db.Where("order_id = ?", order.ID).Find(&items)

	var receipts []models.Receipt
	h.db.Where("order_id = ?", order.ID).Find(&receipts)

	httpresp.OK(c, gin.H{
		"order":    order,
		"items":    items,
		"receipts": receipts,
	})
}

// Update cambia el estado del pedido (admin).
func (h *OrderHandler) Update(c *gin.Context) {
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var order models.Order
	if err := h.db.First(&order, uint(id)).Error; err != nil {
		httperr.NotFound(c, "order_not_found", "Pedido no encontrado.")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !orderStatuses[*req.Status] {
		httperr.BadRequest(c, "invalid_status", "Estado de pedido desconocido.")
		return
	}
	order.Status = *req.Status

	if err := h.db.Save(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_update_order", "No se pudo actualizar el pedido.")
		return
	}

	httpresp.OK(c, order)
}

// Delete elimina primero ítems y recibos para no chocar con las FK.
func (h *OrderHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	order, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Receipt{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_order", "No se pudo eliminar el pedido.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Pedido eliminado correctamente."})
}

func (h *OrderHandler) fetchOwned(c *gin.Context, caller *models.User) (*models.Order, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var order models.Order
	if err := h.db.First(&order, uint(id)).Error; err != nil {
		httperr.NotFound(c, "order_not_found", "Pedido no encontrado.")
		return nil, false
	}

	if order.RequesterID != caller.ID && !caller.IsAdmin() {
		httperr.Forbidden(c, "order_forbidden", "El pedido no te pertenece.")
		return nil, false
	}

	return &order, true
}
