package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/usecase/checkout"
)

type CheckoutGormRepository struct {
	db *gorm.DB
}

func NewCheckoutGormRepository(db *gorm.DB) *CheckoutGormRepository {
	return &CheckoutGormRepository{db: db}
}

func (r *CheckoutGormRepository) GetPaymentMethod(
	ctx context.Context,
	id uint,
) (*models.PaymentMethod, error) {

	var method models.PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, id).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *CheckoutGormRepository) GetAddress(
	ctx context.Context,
	id uint,
) (*models.Address, error) {

	var addr models.Address
	if err := r.db.WithContext(ctx).First(&addr, id).Error; err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *CheckoutGormRepository) CreateAddress(
	ctx context.Context,
	addr *models.Address,
) error {
	return r.db.WithContext(ctx).Create(addr).Error
}

func (r *CheckoutGormRepository) CreateOrder(
	ctx context.Context,
	order *models.Order,
) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *CheckoutGormRepository) CreateOrderItem(
	ctx context.Context,
	item *models.OrderItem,
) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CheckoutGormRepository) CreateReceipt(
	ctx context.Context,
	receipt *models.Receipt,
) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

// InTx repite el repositorio sobre la transacción; un error de fn
// revierte todas las escrituras.
func (r *CheckoutGormRepository) InTx(
	ctx context.Context,
	fn func(checkout.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CheckoutGormRepository{db: tx})
	})
}

var _ checkout.Repository = (*CheckoutGormRepository)(nil)
