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

type PaymentMethodHandler struct {
	db *gorm.DB
}

func NewPaymentMethodHandler(db *gorm.DB) *PaymentMethodHandler {
	return &PaymentMethodHandler{db: db}
}

type CreatePaymentMethodRequest struct {
	Type          string `json:"type" binding:"required"`
	AccountNumber string `json:"account_number"`
	Holder        string `json:"holder"`
}

type UpdatePaymentMethodRequest struct {
	Type          *string `json:"type"`
	AccountNumber *string `json:"account_number"`
	Holder        *string `json:"holder"`
}

func (h *PaymentMethodHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var methods []models.PaymentMethod
	if err := h.db.Where("owner_id = ?", caller.ID).Order("created_at DESC").Find(&methods).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payment_methods", "No se pudieron listar los métodos de pago.")
		return
	}

	httpresp.List(c, methods)
}

func (h *PaymentMethodHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	method, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	httpresp.OK(c, method)
}

func (h *PaymentMethodHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var req CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !models.IsValidPaymentMethodType(req.Type) {
		httperr.BadRequest(c, "invalid_payment_type", "Tipo de medio de pago desconocido.")
		return
	}

	method := models.PaymentMethod{
		Type:          req.Type,
		AccountNumber: req.AccountNumber,
		Holder:        req.Holder,
		OwnerID:       caller.ID,
	}

	if err := h.db.Create(&method).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment_method", "No se pudo registrar el método de pago.")
		return
	}

	c.JSON(201, method)
}

func (h *PaymentMethodHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	method, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Type != nil {
		if !models.IsValidPaymentMethodType(*req.Type) {
			httperr.BadRequest(c, "invalid_payment_type", "Tipo de medio de pago desconocido.")
			return
		}
		method.Type = *req.Type
	}
	if req.AccountNumber != nil {
		method.AccountNumber = *req.AccountNumber
	}
	if req.Holder != nil {
		method.Holder = *req.Holder
	}

	if err := h.db.Save(method).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment_method", "No se pudo actualizar el método de pago.")
		return
	}

	httpresp.OK(c, method)
}

func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	method, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	if err := h.db.Delete(method).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "payment_method_in_use", "El método de pago tiene pedidos asociados.")
			return
		}
		httperr.Internal(c, "failed_to_delete_payment_method", "No se pudo eliminar el método de pago.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Método de pago eliminado correctamente."})
}

func (h *PaymentMethodHandler) fetchOwned(c *gin.Context, caller *models.User) (*models.PaymentMethod, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var method models.PaymentMethod
	if err := h.db.First(&method, uint(id)).Error; err != nil {
		httperr.NotFound(c, "payment_method_not_found", "Método de pago no encontrado.")
		return nil, false
	}

	if method.OwnerID != caller.ID && !caller.IsAdmin() {
		httperr.Forbidden(c, "payment_method_forbidden", "El método de pago no te pertenece.")
		return nil, false
	}

	return &method, true
}
