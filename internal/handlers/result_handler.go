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

type ResultHandler struct {
	db *gorm.DB
}

func NewResultHandler(db *gorm.DB) *ResultHandler {
	return &ResultHandler{db: db}
}

type CreateResultRequest struct {
	AppointmentID  uint   `json:"appointment_id" binding:"required"`
	Diagnosis      string `json:"diagnosis" binding:"required"`
	Observations   string `json:"observations"`
	NeedsTreatment bool   `json:"needs_treatment"`
}

type UpdateResultRequest struct {
	Diagnosis      *string `json:"diagnosis"`
	Observations   *string `json:"observations"`
	NeedsTreatment *bool   `json:"needs_treatment"`
}

// serviceOwnerOf carga la cita y responde si el caller es el proveedor
// que la atiende (o admin).
func (h *ResultHandler) serviceOwnerOf(c *gin.Context, caller *models.User, appointmentID uint) (*models.Appointment, bool) {
	var ap models.Appointment
	if err := h.db.First(&ap, appointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return nil, false
	}

	var service models.Service
	if err := h.db.First(&service, ap.ServiceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return nil, false
	}

	if service.OwnerID != caller.ID && !caller.IsAdmin() {
		httperr.Forbidden(c, "not_service_owner", "Solo el proveedor que atendió la cita emite resultados.")
		return nil, false
	}

	return &ap, true
}

// ListByAppointment devuelve los resultados de una cita; los ven ambas
// partes.
func (h *ResultHandler) ListByAppointment(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, uint(id)).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, ap.ServiceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	if caller.ID != ap.RequesterID && caller.ID != service.OwnerID && !caller.IsAdmin() {
		httperr.Forbidden(c, "not_participant", "No participas en esta cita.")
		return
	}

	var results []models.Result
	if err := h.db.Where("appointment_id = ?", ap.ID).Order("created_at DESC").Find(&results).Error; err != nil {
		httperr.Internal(c, "failed_to_list_results", "No se pudieron listar los resultados.")
		return
	}

	httpresp.List(c, results)
}

func (h *ResultHandler) Get(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var result models.Result
	if err := h.db.First(&result, uint(id)).Error; err != nil {
		httperr.NotFound(c, "result_not_found", "Resultado no encontrado.")
		return
	}

	httpresp.OK(c, result)
}

func (h *ResultHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var req CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, ok := h.serviceOwnerOf(c, caller, req.AppointmentID)
	if !ok {
		return
	}

	result := models.Result{
		AppointmentID:  ap.ID,
		Diagnosis:      req.Diagnosis,
		Observations:   req.Observations,
		NeedsTreatment: req.NeedsTreatment,
	}

	if err := h.db.Create(&result).Error; err != nil {
		httperr.Internal(c, "failed_to_create_result", "No se pudo registrar el resultado.")
		return
	}

	c.JSON(201, result)
}

func (h *ResultHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var result models.Result
	if err := h.db.First(&result, uint(id)).Error; err != nil {
		httperr.NotFound(c, "result_not_found", "Resultado no encontrado.")
		return
	}

	if _, ok := h.serviceOwnerOf(c, caller, result.AppointmentID); !ok {
		return
	}

	var req UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Diagnosis != nil {
		result.Diagnosis = *req.Diagnosis
	}
	if req.Observations != nil {
		result.Observations = *req.Observations
	}
	if req.NeedsTreatment != nil {
		result.NeedsTreatment = *req.NeedsTreatment
	}

	if err := h.db.Save(&result).Error; err != nil {
		httperr.Internal(c, "failed_to_update_result", "No se pudo actualizar el resultado.")
		return
	}

	httpresp.OK(c, result)
}

func (h *ResultHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var result models.Result
	if err := h.db.First(&result, uint(id)).Error; err != nil {
		httperr.NotFound(c, "result_not_found", "Resultado no encontrado.")
		return
	}

	if _, ok := h.serviceOwnerOf(c, caller, result.AppointmentID); !ok {
		return
	}

	if err := h.db.Delete(&result).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "result_has_treatments", "El resultado tiene tratamientos asociados.")
			return
		}
		httperr.Internal(c, "failed_to_delete_result", "No se pudo eliminar el resultado.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Resultado eliminado correctamente."})
}
