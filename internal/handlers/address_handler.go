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

type AddressHandler struct {
	db *gorm.DB
}

func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{db: db}
}

type CreateAddressRequest struct {
	Alias       string `json:"alias"`
	FullAddress string `json:"full_address" binding:"required"`
	PostalCode  string `json:"postal_code"`
	RegionID    uint   `json:"region_id" binding:"required"`
	CityID      uint   `json:"city_id" binding:"required"`
	IsPrimary   bool   `json:"is_primary"`
}

type UpdateAddressRequest struct {
	Alias       *string `json:"alias"`
	FullAddress *string `json:"full_address"`
	PostalCode  *string `json:"postal_code"`
	RegionID    *uint   `json:"region_id"`
	CityID      *uint   `json:"city_id"`
	IsPrimary   *bool   `json:"is_primary"`
	Status      *string `json:"status"`
}

// deliverySummary acompaña cada dirección con los pedidos que se
// entregan en ella, para la vista de domicilios.
type deliverySummary struct {
	models.Address
	Orders []models.Order `json:"orders"`
}

func (h *AddressHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var addresses []models.Address
	if err := h.db.Where("owner_id = ?", caller.ID).Order("is_primary DESC, id ASC").Find(&addresses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_addresses", "No se pudieron listar las direcciones.")
		return
	}

	summaries := make([]deliverySummary, 0, len(addresses))
	for _, addr := range addresses {
		var orders []models.Order
		h.db.Where("address_id = ?", addr.ID).Order("created_at DESC").Find(&orders)
		summaries = append(summaries, deliverySummary{Address: addr, Orders: orders})
	}

	httpresp.List(c, summaries)
}

// ListDeliveries es la vista del repartidor: direcciones con pedidos en
// camino, de cualquier usuario.
func (h *AddressHandler) ListDeliveries(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	if caller.Role != models.RoleCourier && !caller.IsAdmin() {
		httperr.Forbidden(c, "courier_required", "Solo repartidores pueden ver los domicilios.")
		return
	}

	var addresses []models.Address
	if err := h.db.Where("status IN ?", []string{models.AddressPending, models.AddressInDelivery}).
		Order("id ASC").Find(&addresses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_addresses", "No se pudieron listar los domicilios.")
		return
	}

	httpresp.List(c, addresses)
}

func (h *AddressHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	addr, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	httpresp.OK(c, addr)
}

func (h *AddressHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	addr := models.Address{
		Alias:       req.Alias,
		FullAddress: req.FullAddress,
		PostalCode:  req.PostalCode,
		RegionID:    req.RegionID,
		CityID:      req.CityID,
		IsPrimary:   req.IsPrimary,
		Status:      models.AddressPending,
		OwnerID:     caller.ID,
	}

	if req.IsPrimary {
		h.db.Model(&models.Address{}).Where("owner_id = ?", caller.ID).Update("is_primary", false)
	}

	if err := h.db.Create(&addr).Error; err != nil {
		httperr.Internal(c, "failed_to_create_address", "No se pudo registrar la dirección.")
		return
	}

	c.JSON(201, addr)
}

func (h *AddressHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	addr, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Alias != nil {
		addr.Alias = *req.Alias
	}
	if req.FullAddress != nil {
		addr.FullAddress = *req.FullAddress
	}
	if req.PostalCode != nil {
		addr.PostalCode = *req.PostalCode
	}
	if req.RegionID != nil {
		addr.RegionID = *req.RegionID
	}
	if req.CityID != nil {
		addr.CityID = *req.CityID
	}
	if req.IsPrimary != nil {
		if *req.IsPrimary {
			h.db.Model(&models.Address{}).Where("owner_id = ?", caller.ID).Update("is_primary", false)
		}
		addr.IsPrimary = *req.IsPrimary
	}

	// El estado de entrega lo mueve el repartidor o un admin.
	if req.Status != nil {
		if caller.Role != models.RoleCourier && !caller.IsAdmin() {
			httperr.Forbidden(c, "courier_required", "Solo repartidores cambian el estado de entrega.")
			return
		}
		addr.Status = *req.Status
	}

	if err := h.db.Save(addr).Error; err != nil {
		httperr.Internal(c, "failed_to_update_address", "No se pudo actualizar la dirección.")
		return
	}

	httpresp.OK(c, addr)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	addr, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	if err := h.db.Delete(addr).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "address_has_orders", "La dirección tiene pedidos asociados.")
			return
		}
		httperr.Internal(c, "failed_to_delete_address", "No se pudo eliminar la dirección.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Dirección eliminada correctamente."})
}

func (h *AddressHandler) fetchOwned(c *gin.Context, caller *models.User) (*models.Address, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var addr models.Address
	if err := h.db.First(&addr, uint(id)).Error; err != nil {
		httperr.NotFound(c, "address_not_found", "Dirección no encontrada.")
		return nil, false
	}

	isCourier := caller.Role == models.RoleCourier
	if addr.OwnerID != caller.ID && !caller.IsAdmin() && !isCourier {
		httperr.Forbidden(c, "address_forbidden", "La dirección no te pertenece.")
		return nil, false
	}

	return &addr, true
}
