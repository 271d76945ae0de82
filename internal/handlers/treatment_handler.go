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

type TreatmentHandler struct {
	db *gorm.DB
}

func NewTreatmentHandler(db *gorm.DB) *TreatmentHandler {
	return &TreatmentHandler{db: db}
}

type CreateTreatmentRequest struct {
	ResultID    uint   `json:"result_id" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

type UpdateTreatmentRequest struct {
	Type        *string `json:"type"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      *string `json:"status"`
}

func (h *TreatmentHandler) ListByResult(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var treatments []models.Treatment
	if err := h.db.Where("result_id = ?", uint(id)).Order("id ASC").Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "No se pudieron listar los tratamientos.")
		return
	}

	httpresp.List(c, treatments)
}

func (h *TreatmentHandler) Get(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var treatment models.Treatment
	if err := h.db.First(&treatment, uint(id)).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	httpresp.OK(c, treatment)
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	if caller.Role != models.RoleProvider && !caller.IsAdmin() {
		httperr.Forbidden(c, "provider_required", "Solo proveedores registran tratamientos.")
		return
	}

	var req CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var result models.Result
	if err := h.db.First(&result, req.ResultID).Error; err != nil {
		httperr.NotFound(c, "result_not_found", "Resultado no encontrado.")
		return
	}

	treatment := models.Treatment{
		ResultID:    result.ID,
		Type:        req.Type,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	}

	if err := h.db.Create(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_treatment", "No se pudo registrar el tratamiento.")
		return
	}

	c.JSON(201, treatment)
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	if caller.Role != models.RoleProvider && !caller.IsAdmin() {
		httperr.Forbidden(c, "provider_required", "Solo proveedores modifican tratamientos.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var treatment models.Treatment
	if err := h.db.First(&treatment, uint(id)).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Type != nil {
		treatment.Type = *req.Type
	}
	if req.Description != nil {
		treatment.Description = *req.Description
	}
	if req.StartDate != nil {
		treatment.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		treatment.EndDate = *req.EndDate
	}
	if req.Status != nil {
		treatment.Status = *req.Status
	}

	if err := h.db.Save(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_treatment", "No se pudo actualizar el tratamiento.")
		return
	}

	httpresp.OK(c, treatment)
}

func (h *TreatmentHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	if caller.Role != models.RoleProvider && !caller.IsAdmin() {
		httperr.Forbidden(c, "provider_required", "Solo proveedores eliminan tratamientos.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.db.Delete(&models.Treatment{}, uint(id)).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_treatment", "No se pudo eliminar el tratamiento.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Tratamiento eliminado correctamente."})
}
