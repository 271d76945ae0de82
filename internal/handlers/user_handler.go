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

type UserHandler struct {
	db      *gorm.DB
	storage upload.Storage
}

func NewUserHandler(db *gorm.DB, storage upload.Storage) *UserHandler {
	return &UserHandler{db: db, storage: storage}
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Phone    *string `json:"phone"`
	RegionID *uint   `json:"region_id"`
	CityID   *uint   `json:"city_id"`
	Status   *string `json:"status"`
}

// ======================================================
// ME
// ======================================================
func (h *UserHandler) Me(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if actor.User != nil {
		httpresp.OK(c, actor.User)
		return
	}
	httpresp.OK(c, actor.Supplier)
}

// ======================================================
// LIST (ADMIN)
// ======================================================
func (h *UserHandler) List(c *gin.Context) {
	if _, ok := middleware.RequireAdmin(c); !ok {
		return
	}

	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "No se pudieron listar los usuarios.")
		return
	}

	httpresp.List(c, users)
}

// ======================================================
// GET
// ======================================================
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// UPDATE (dueño de la cuenta o admin)
// ======================================================
func (h *UserHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if caller.ID != uint(id) && !caller.IsAdmin() {
		httperr.Forbidden(c, "forbidden", "No puedes modificar esta cuenta.")
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.RegionID != nil {
		user.RegionID = *req.RegionID
	}
	if req.CityID != nil {
		user.CityID = *req.CityID
	}

	// Solo un admin cambia el estado de una cuenta.
	if req.Status != nil {
		if !caller.IsAdmin() {
			httperr.Forbidden(c, "admin_required", "Solo un administrador puede cambiar el estado de la cuenta.")
			return
		}
		user.Status = *req.Status
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "No se pudo actualizar el usuario.")
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// UPLOAD PHOTO
// ======================================================
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	url, ok := processUpload(c, h.storage)
	if !ok {
		return
	}

	caller.ImageURL = url
	if err := h.db.Save(caller).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "No se pudo guardar la foto de perfil.")
		return
	}

	httpresp.OK(c, gin.H{"image_url": url})
}

// ======================================================
// DELETE (dueño de la cuenta o admin)
// ======================================================
func (h *UserHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if caller.ID != uint(id) && !caller.IsAdmin() {
		httperr.Forbidden(c, "forbidden", "No puedes eliminar esta cuenta.")
		return
	}

	if err := h.db.Delete(&models.User{}, uint(id)).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "user_has_records", "El usuario tiene registros asociados; desactívalo en su lugar.")
			return
		}
		httperr.Internal(c, "failed_to_delete_user", "No se pudo eliminar el usuario.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Usuario eliminado correctamente."})
}
