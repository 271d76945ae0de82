package checkout

import (
	"context"
	"math"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ======================================================
// INPUT
// ======================================================

type ItemInput struct {
	ProductID uint
	Quantity  int
	Subtotal  float64
}

type AddressInput struct {
	ID *uint

	Alias       string
	FullAddress string
	PostalCode  string
	RegionID    uint
	CityID      uint
	IsPrimary   bool
}

type Input struct {
	Requester *models.User

	PaymentMethodID uint
	Total           float64
	Items           []ItemInput
	Address         *AddressInput
}

type Output struct {
	Order   *models.Order
	Receipt *models.Receipt
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	repo Repository
}

func NewCheckout(repo Repository) *Checkout {
	return &Checkout{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Checkout) Execute(ctx context.Context, in Input) (*Output, error) {

	// --------------------------------------------------
	// 1️⃣ Carrito
	// --------------------------------------------------
	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_cart")
	}

	var sum float64
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}
		sum += item.Subtotal
	}

	// Comparación en centavos: los subtotales vienen como float64 y la
	// suma binaria puede desviarse del total decimal exacto.
	if toCents(sum) != toCents(in.Total) {
		return nil, httperr.ErrBusiness("total_mismatch")
	}

	// --------------------------------------------------
	// 2️⃣ Método de pago (del solicitante)
	// --------------------------------------------------
	method, err := uc.repo.GetPaymentMethod(ctx, in.PaymentMethodID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_method_not_found")
	}

	if method.OwnerID != in.Requester.ID && !in.Requester.IsAdmin() {
		return nil, httperr.ErrBusiness("payment_method_forbidden")
	}

	// --------------------------------------------------
	// 3️⃣ Dirección de entrega (referencia o inline)
	// --------------------------------------------------
	var existingAddr *models.Address
	if in.Address != nil && in.Address.ID != nil {
		existingAddr, err = uc.repo.GetAddress(ctx, *in.Address.ID)
		if err != nil {
			return nil, httperr.ErrBusiness("address_not_found")
		}
		if existingAddr.OwnerID != in.Requester.ID && !in.Requester.IsAdmin() {
			return nil, httperr.ErrBusiness("address_forbidden")
		}
	}

	if in.Address != nil && in.Address.ID == nil {
		if in.Address.FullAddress == "" || in.Address.RegionID == 0 || in.Address.CityID == 0 {
			return nil, httperr.ErrBusiness("incomplete_address")
		}
	}

	// --------------------------------------------------
	// 4️⃣ Pedido + ítems + recibo en una sola transacción
	// --------------------------------------------------
	out := &Output{}

	err = uc.repo.InTx(ctx, func(tx Repository) error {
		var addressID *uint

		switch {
		case existingAddr != nil:
			addressID = &existingAddr.ID
		case in.Address != nil:
			addr := &models.Address{
				OwnerID:     in.Requester.ID,
				Alias:       in.Address.Alias,
				FullAddress: in.Address.FullAddress,
				PostalCode:  in.Address.PostalCode,
				RegionID:    in.Address.RegionID,
				CityID:      in.Address.CityID,
				IsPrimary:   in.Address.IsPrimary,
				Status:      models.AddressPending,
			}
			if err := tx.CreateAddress(ctx, addr); err != nil {
				return err
			}
			addressID = &addr.ID
		}

		order := &models.Order{
			RequesterID:     in.Requester.ID,
			PaymentMethodID: method.ID,
			AddressID:       addressID,
			Total:           in.Total,
			Status:          models.OrderPaid,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		for _, item := range in.Items {
			oi := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Subtotal:  item.Subtotal,
			}
			if err := tx.CreateOrderItem(ctx, oi); err != nil {
				return err
			}
		}

		receipt := &models.Receipt{
			OrderID:    order.ID,
			AmountPaid: in.Total,
			Status:     models.ReceiptPaid,
		}
		if err := tx.CreateReceipt(ctx, receipt); err != nil {
			return err
		}

		out.Order = order
		out.Receipt = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
