package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/middleware"
	"github.com/eclipse7-9/enlistment-layout/internal/usecase/checkout"
)

type CheckoutHandler struct {
	checkout *checkout.Checkout
}

func NewCheckoutHandler(uc *checkout.Checkout) *CheckoutHandler {
	return &CheckoutHandler{checkout: uc}
}

type CheckoutItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Subtotal  float64 `json:"subtotal" binding:"required"`
}

type CheckoutAddressRequest struct {
	ID *uint `json:"id"`

	Alias       string `json:"alias"`
	FullAddress string `json:"full_address"`
	PostalCode  string `json:"postal_code"`
	RegionID    uint   `json:"region_id"`
	CityID      uint   `json:"city_id"`
	IsPrimary   bool   `json:"is_primary"`
}

type CheckoutRequest struct {
	PaymentMethodID uint                    `json:"payment_method_id" binding:"required"`
	Total           float64                 `json:"total" binding:"required"`
	Items           []CheckoutItemRequest   `json:"items" binding:"required"`
	Address         *CheckoutAddressRequest `json:"address"`
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	in := checkout.Input{
		Requester:       caller,
		PaymentMethodID: req.PaymentMethodID,
		Total:           req.Total,
	}

	for _, item := range req.Items {
		in.Items = append(in.Items, checkout.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	if req.Address != nil {
		in.Address = &checkout.AddressInput{
			ID:          req.Address.ID,
			Alias:       req.Address.Alias,
			FullAddress: req.Address.FullAddress,
			PostalCode:  req.Address.PostalCode,
			RegionID:    req.Address.RegionID,
			CityID:      req.Address.CityID,
			IsPrimary:   req.Address.IsPrimary,
		}
	}

	out, err := h.checkout.Execute(c.Request.Context(), in)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "checkout_failed", "No se pudo completar la compra.")
		}
		return
	}

	c.JSON(201, gin.H{
		"order":   out.Order,
		"receipt": out.Receipt,
	})
}
