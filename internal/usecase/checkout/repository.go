package checkout

import (
	"context"

	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

// Repository cubre las lecturas previas y las escrituras del checkout.
// InTx ejecuta fn sobre una vista transaccional del repositorio: si fn
// devuelve error no queda escrito nada.
type Repository interface {
	GetPaymentMethod(ctx context.Context, id uint) (*models.PaymentMethod, error)
	GetAddress(ctx context.Context, id uint) (*models.Address, error)

	CreateAddress(ctx context.Context, addr *models.Address) error
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error

	InTx(ctx context.Context, fn func(Repository) error) error
}
