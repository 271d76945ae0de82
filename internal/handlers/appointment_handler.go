package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/eclipse7-9/enlistment-layout/internal/domain/booking"
	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/httpresp"
	"github.com/eclipse7-9/enlistment-layout/internal/middleware"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/usecase/booking"
	"github.com/eclipse7-9/enlistment-layout/internal/usecase/moderation"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	create  *booking.CreateAppointment
	confirm *booking.ConfirmAppointment
	cancel  *booking.CancelAppointment

	postMessage  *moderation.PostMessage
	listMessages *moderation.ListMessages
	report       *moderation.ReportAppointment
	blocked      *moderation.CheckBlocked
}

func NewAppointmentHandler(
	db *gorm.DB,
	create *booking.CreateAppointment,
	confirm *booking.ConfirmAppointment,
	cancel *booking.CancelAppointment,
	postMessage *moderation.PostMessage,
	listMessages *moderation.ListMessages,
	report *moderation.ReportAppointment,
	blocked *moderation.CheckBlocked,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		create:       create,
		confirm:      confirm,
		cancel:       cancel,
		postMessage:  postMessage,
		listMessages: listMessages,
		report:       report,
		blocked:      blocked,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID           uint   `json:"pet_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	PaymentMethodID uint   `json:"payment_method_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type ReportRequest struct {
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}

// ======================================================
// LIST / GET
// ======================================================

// List devuelve las citas donde el usuario participa: como solicitante
// o como dueño del servicio. Un admin ve todas.
func (h *AppointmentHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	q := h.db.Preload("Pet").Preload("Service").Order("date DESC, time DESC")

	if !caller.IsAdmin() {
		q = q.Where(
			"requester_id = ? OR service_id IN (?)",
			caller.ID,
			h.db.Model(&models.Service{}).Select("id").Where("owner_id = ?", caller.ID),
		)
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "No se pudieron listar las citas.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	ap, ok := h.fetchParticipant(c, caller)
	if !ok {
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		Requester:       caller,
		PetID:           req.PetID,
		ServiceID:       req.ServiceID,
		PaymentMethodID: req.PaymentMethodID,
		Date:            req.Date,
		Time:            req.Time,
	})
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_create_appointment", "No se pudo crear la cita.")
		}
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// TRANSICIONES DE ESTADO
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirm.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

// UpdateStatus es la vía directa de administración: fija cualquier
// estado conocido sin validar la transición.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !domain.Status(req.Status).IsValid() {
		httperr.BadRequest(c, "invalid_status", "Estado de cita desconocido.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	ap.Status = req.Status
	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "No se pudo actualizar la cita.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

// Delete lo hace el solicitante, el dueño del servicio o un admin.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	ap, ok := h.fetchParticipant(c, caller)
	if !ok {
		return
	}

	// Los mensajes y denuncias de la cita caen en cascada.
	if err := h.db.Delete(ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "No se pudo eliminar la cita.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Cita eliminada correctamente."})
}

// ======================================================
// MENSAJES
// ======================================================

func (h *AppointmentHandler) ListMessages(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	msgs, err := h.listMessages.Execute(c.Request.Context(), caller, id)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_list_messages", "No se pudieron listar los mensajes.")
		}
		return
	}

	httpresp.List(c, msgs)
}

func (h *AppointmentHandler) PostMessage(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	msg, err := h.postMessage.Execute(c.Request.Context(), caller, id, req.Text)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_post_message", "No se pudo enviar el mensaje.")
		}
		return
	}

	c.JSON(201, msg)
}

// ======================================================
// DENUNCIAS Y BLOQUEO
// ======================================================

func (h *AppointmentHandler) Report(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	report, err := h.report.Execute(c.Request.Context(), caller, id, req.Reason, req.Description)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_create_report", "No se pudo registrar la denuncia.")
		}
		return
	}

	c.JSON(201, report)
}

// Blocked indica si el proveedor de la cita bloqueó al solicitante.
func (h *AppointmentHandler) Blocked(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	blocked, err := h.blocked.Execute(c.Request.Context(), caller, id)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_check_block", "No se pudo consultar el bloqueo.")
		}
		return
	}

	httpresp.OK(c, gin.H{"blocked": blocked})
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) transition(
	c *gin.Context,
	exec func(ctx context.Context, caller *models.User, id uint) (*models.Appointment, error),
) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := exec(c.Request.Context(), caller, id)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_update_appointment", "No se pudo actualizar la cita.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) fetchParticipant(c *gin.Context, caller *models.User) (*models.Appointment, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}

	var ap models.Appointment
	if err := h.db.Preload("Pet").Preload("Service").First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return nil, false
	}

	if ap.RequesterID != caller.ID && ap.Service.OwnerID != caller.ID && !caller.IsAdmin() {
		httperr.Forbidden(c, "not_participant", "No participas en esta cita.")
		return nil, false
	}

	return &ap, true
}
