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

type ProductHandler struct {
	db      *gorm.DB
	storage upload.Storage
}

func NewProductHandler(db *gorm.DB, storage upload.Storage) *ProductHandler {
	return &ProductHandler{db: db, storage: storage}
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Status      *string  `json:"status"`
}

// List es el catálogo público; ?category= y ?supplier_id= filtran.
func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Order("id DESC")

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if raw := c.Query("supplier_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_supplier_id", "Identificador de proveedor inválido.")
			return
		}
		q = q.Where("supplier_id = ?", uint(parsed))
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "No se pudieron listar los productos.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var product models.Product
	if err := h.db.First(&product, uint(id)).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producto no encontrado.")
		return
	}

	httpresp.OK(c, product)
}

// Create solo para cuentas de proveedor de productos.
func (h *ProductHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if actor.Supplier == nil {
		httperr.Forbidden(c, "supplier_required", "Solo proveedores publican productos.")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Status:      models.ProductInStock,
		SupplierID:  actor.Supplier.ID,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "No se pudo publicar el producto.")
		return
	}

	c.JSON(201, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	product, ok := h.fetchOwned(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := h.db.Save(product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "No se pudo actualizar el producto.")
		return
	}

	httpresp.OK(c, product)
}

func (h *ProductHandler) UploadImage(c *gin.Context) {
	product, ok := h.fetchOwned(c)
	if !ok {
		return
	}

	url, ok := processUpload(c, h.storage)
	if !ok {
		return
	}

	product.ImageURL = url
	if err := h.db.Save(product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "No se pudo guardar la imagen.")
		return
	}

	httpresp.OK(c, gin.H{"image_url": url})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	product, ok := h.fetchOwned(c)
	if !ok {
		return
	}

	if err := h.db.Delete(product).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "product_has_orders", "El producto aparece en pedidos; retíralo en su lugar.")
			return
		}
		httperr.Internal(c, "failed_to_delete_product", "No se pudo eliminar el producto.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Producto eliminado correctamente."})
}

func (h *ProductHandler) fetchOwned(c *gin.Context) (*models.Product, bool) {
	actor := middleware.CurrentActor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return nil, false
	}

	var product models.Product
	if err := h.db.First(&product, uint(id)).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producto no encontrado.")
		return nil, false
	}

	isOwner := actor.Supplier != nil && actor.Supplier.ID == product.SupplierID
	isAdmin := actor.User != nil && actor.User.IsAdmin()
	if !isOwner && !isAdmin {
		httperr.Forbidden(c, "product_forbidden", "El producto no te pertenece.")
		return nil, false
	}

	return &product, true
}
