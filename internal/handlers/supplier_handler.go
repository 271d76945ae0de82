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

type SupplierHandler struct {
	db *gorm.DB
}

func NewSupplierHandler(db *gorm.DB) *SupplierHandler {
	return &SupplierHandler{db: db}
}

type UpdateSupplierRequest struct {
	CompanyName    *string `json:"company_name"`
	Phone          *string `json:"phone"`
	ContactAddress *string `json:"contact_address"`
	Status         *string `json:"status"`
}

func (h *SupplierHandler) List(c *gin.Context) {
	var suppliers []models.Supplier
	if err := h.db.Order("id ASC").Find(&suppliers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_suppliers", "No se pudieron listar los proveedores.")
		return
	}
	httpresp.List(c, suppliers)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var supplier models.Supplier
	if err := h.db.First(&supplier, uint(id)).Error; err != nil {
		httperr.NotFound(c, "supplier_not_found", "Proveedor no encontrado.")
		return
	}

	httpresp.OK(c, supplier)
}

// Update solo lo hace la propia cuenta o un admin.
func (h *SupplierHandler) Update(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	isSelf := actor.Supplier != nil && actor.Supplier.ID == uint(id)
	isAdmin := actor.User != nil && actor.User.IsAdmin()
	if !isSelf && !isAdmin {
		httperr.Forbidden(c, "forbidden", "No puedes modificar esta cuenta.")
		return
	}

	var supplier models.Supplier
	if err := h.db.First(&supplier, uint(id)).Error; err != nil {
		httperr.NotFound(c, "supplier_not_found", "Proveedor no encontrado.")
		return
	}

	var req UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.CompanyName != nil {
		supplier.CompanyName = *req.CompanyName
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.ContactAddress != nil {
		supplier.ContactAddress = *req.ContactAddress
	}
	if req.Status != nil {
		if !isAdmin {
			httperr.Forbidden(c, "admin_required", "Solo un administrador puede cambiar el estado de la cuenta.")
			return
		}
		supplier.Status = *req.Status
	}

	if err := h.db.Save(&supplier).Error; err != nil {
		httperr.Internal(c, "failed_to_update_supplier", "No se pudo actualizar el proveedor.")
		return
	}

	httpresp.OK(c, supplier)
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	isSelf := actor.Supplier != nil && actor.Supplier.ID == uint(id)
	isAdmin := actor.User != nil && actor.User.IsAdmin()
	if !isSelf && !isAdmin {
		httperr.Forbidden(c, "forbidden", "No puedes eliminar esta cuenta.")
		return
	}

	if err := h.db.Delete(&models.Supplier{}, uint(id)).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "supplier_has_products", "El proveedor tiene productos asociados.")
			return
		}
		httperr.Internal(c, "failed_to_delete_supplier", "No se pudo eliminar el proveedor.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Proveedor eliminado correctamente."})
}
