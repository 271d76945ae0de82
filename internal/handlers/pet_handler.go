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

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

type CreatePetRequest struct {
	Name     string `json:"name" binding:"required"`
	Species  string `json:"species" binding:"required"`
	Breed    string `json:"breed" binding:"required"`
	WeightKg int    `json:"weight_kg"`
	AgeYears int    `json:"age_years"`
	HeightCm int    `json:"height_cm"`
}

type UpdatePetRequest struct {
	Name     *string `json:"name"`
	Species  *string `json:"species"`
	Breed    *string `json:"breed"`
	WeightKg *int    `json:"weight_kg"`
	AgeYears *int    `json:"age_years"`
	HeightCm *int    `json:"height_cm"`
}

// List devuelve las mascotas del usuario autenticado; un admin puede
// listar las de cualquiera con ?owner_id=.
func (h *PetHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	ownerID := caller.ID
	if caller.IsAdmin() {
		if raw := c.Query("owner_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				httperr.BadRequest(c, "invalid_owner_id", "Identificador de dueño inválido.")
				return
			}
			ownerID = uint(parsed)
		}
	}

	var pets []models.Pet
	if err := h.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "No se pudieron listar las mascotas.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	pet, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !models.IsValidSpecies(req.Species) {
		httperr.BadRequest(c, "invalid_species", "Especie desconocida.")
		return
	}

	pet := models.Pet{
		Name:     req.Name,
		Species:  req.Species,
		Breed:    req.Breed,
		WeightKg: req.WeightKg,
		AgeYears: req.AgeYears,
		HeightCm: req.HeightCm,
		OwnerID:  caller.ID,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "No se pudo registrar la mascota.")
		return
	}

	c.JSON(201, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	pet, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Species != nil {
		if !models.IsValidSpecies(*req.Species) {
			httperr.BadRequest(c, "invalid_species", "Especie desconocida.")
			return
		}
		pet.Species = *req.Species
	}
	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.WeightKg != nil {
		pet.WeightKg = *req.WeightKg
	}
	if req.AgeYears != nil {
		pet.AgeYears = *req.AgeYears
	}
	if req.HeightCm != nil {
		pet.HeightCm = *req.HeightCm
	}

	if err := h.db.Save(pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "No se pudo actualizar la mascota.")
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	pet, ok := h.fetchOwned(c, caller)
	if !ok {
		return
	}

	if err := h.db.Delete(pet).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "pet_has_appointments", "La mascota tiene citas asociadas.")
			return
		}
		httperr.Internal(c, "failed_to_delete_pet", "No se pudo eliminar la mascota.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Mascota eliminada correctamente."})
}

func (h *PetHandler) fetchOwned(c *gin.Context, caller *models.User) (*models.Pet, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var pet models.Pet
	if err := h.db.First(&pet, uint(id)).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Mascota no encontrada.")
		return nil, false
	}

	if pet.OwnerID != caller.ID && !caller.IsAdmin() {
		httperr.Forbidden(c, "pet_forbidden", "La mascota no te pertenece.")
		return nil, false
	}

	return &pet, true
}
