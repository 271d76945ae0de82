package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/httpresp"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

// LocationHandler sirve el catálogo geográfico de solo lectura.
type LocationHandler struct {
	db *gorm.DB
}

func NewLocationHandler(db *gorm.DB) *LocationHandler {
	return &LocationHandler{db: db}
}

func (h *LocationHandler) ListRegions(c *gin.Context) {
	var regions []models.Region
	if err := h.db.Order("name ASC").Find(&regions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_regions", "No se pudieron listar las regiones.")
		return
	}
	httpresp.List(c, regions)
}

// ListCities devuelve las ciudades de una región.
func (h *LocationHandler) ListCities(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var cities []models.City
	if err := h.db.Where("region_id = ?", uint(id)).Order("name ASC").Find(&cities).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cities", "No se pudieron listar las ciudades.")
		return
	}
	httpresp.List(c, cities)
}
