package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/httpresp"
	"github.com/eclipse7-9/enlistment-layout/internal/middleware"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/upload"
)

type ServiceHandler struct {
	db      *gorm.DB
	storage upload.Storage
}

func NewServiceHandler(db *gorm.DB, storage upload.Storage) *ServiceHandler {
	return &ServiceHandler{db: db, storage: storage}
}

type CreateServiceRequest struct {
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Type        *string  `json:"type"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Status      *string  `json:"status"`
}

// List es el catálogo público; ?owner_id= filtra por proveedor.
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	if raw := c.Query("owner_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_owner_id", "Identificador de dueño inválido.")
			return
		}
		q = q.Where("owner_id = ?", uint(parsed))
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "No se pudieron listar los servicios.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	httpresp.OK(c, service)
}

// Create exige rol provider (o admin).
func (h *ServiceHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	if caller.Role != models.RoleProvider && !caller.IsAdmin() {
		httperr.Forbidden(c, "provider_required", "Solo cuentas de proveedor publican servicios.")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	service := models.Service{
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
		Status:      "active",
		OwnerID:     caller.ID,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "No se pudo publicar el servicio.")
		return
	}

	c.JSON(201, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	service, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Type != nil {
		service.Type = *req.Type
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Status != nil {
		service.Status = *req.Status
	}

	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "No se pudo actualizar el servicio.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	service, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	url, ok := processUpload(c, h.storage)
	if !ok {
		return
	}

	service.ImageURL = url
	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "No se pudo guardar la imagen.")
		return
	}

	httpresp.OK(c, gin.H{"image_url": url})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	service, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	if err := h.db.Delete(service).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "service_has_appointments", "El servicio tiene citas asociadas.")
			return
		}
		httperr.Internal(c, "failed_to_delete_service", "No se pudo eliminar el servicio.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Servicio eliminado correctamente."})
}

func (h *ServiceHandler) fetchOwned(c *gin.Context, caller *models.User) (*models.Service, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return nil, false
	}

	if service.OwnerID != caller.ID && !caller.IsAdmin() {
		httperr.Forbidden(c, "service_forbidden", "El servicio no te pertenece.")
		return nil, false
	}

	return &service, true
}
