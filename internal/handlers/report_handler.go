package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/httpresp"
	"github.com/eclipse7-9/enlistment-layout/internal/middleware"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/usecase/moderation"
)

// ReportHandler es el panel de moderación; todas las rutas son de
// administradores.
type ReportHandler struct {
	db         *gorm.DB
	invalidate *moderation.InvalidateReport
	deactivate *moderation.DeactivateReportedUser
}

func NewReportHandler(
	db *gorm.DB,
	invalidate *moderation.InvalidateReport,
	deactivate *moderation.DeactivateReportedUser,
) *ReportHandler {
	return &ReportHandler{
		db:         db,
		invalidate: invalidate,
		deactivate: deactivate,
	}
}

type ResolveReportRequest struct {
	// Mensaje opcional que acompaña la notificación al usuario.
	Message string `json:"message"`
}

// List devuelve las denuncias; ?resolved=false filtra las pendientes.
func (h *ReportHandler) List(c *gin.Context) {
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}

	q := h.db.Order("created_at DESC")
	if raw := c.Query("resolved"); raw != "" {
		q = q.Where("resolved = ?", raw == "true")
	}

	var reports []models.Report
	if err := q.Find(&reports).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reports", "No se pudieron listar las denuncias.")
		return
	}

	httpresp.List(c, reports)
}

// Get incluye el mensaje del denunciado en la cita, si existe, para que
// el admin revise el contexto.
func (h *ReportHandler) Get(c *gin.Context) {
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var report models.Report
	if err := h.db.First(&report, id).Error; err != nil {
		httperr.NotFound(c, "report_not_found", "Denuncia no encontrada.")
		return
	}

	var messages []models.Message
	h.db.Where("appointment_id = ? AND sender_id = ?", report.AppointmentID, report.TargetID).
		Order("created_at ASC").
		Find(&messages)

	httpresp.OK(c, gin.H{
		"report":   report,
		"messages": messages,
	})
}

// Invalidate archiva la denuncia sin sanción.
func (h *ReportHandler) Invalidate(c *gin.Context) {
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ResolveReportRequest
	_ = c.ShouldBindJSON(&req)

	report, err := h.invalidate.Execute(c.Request.Context(), id, req.Message)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_resolve_report", "No se pudo resolver la denuncia.")
		}
		return
	}

	httpresp.OK(c, report)
}

// Deactivate sanciona la denuncia desactivando la cuenta denunciada.
func (h *ReportHandler) Deactivate(c *gin.Context) {
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ResolveReportRequest
	_ = c.ShouldBindJSON(&req)

	report, err := h.deactivate.Execute(c.Request.Context(), id, req.Message)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_resolve_report", "No se pudo resolver la denuncia.")
		}
		return
	}

	httpresp.OK(c, report)
}
