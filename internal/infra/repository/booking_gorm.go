package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/eclipse7-9/enlistment-layout/internal/domain/booking"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Lecturas previas
// --------------------------------------------------

func (r *BookingGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetPaymentMethod(
	ctx context.Context,
	id uint,
) (*models.PaymentMethod, error) {

	var method models.PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, id).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

// --------------------------------------------------
// Citas
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Pedido provisional
// --------------------------------------------------

func (r *BookingGormRepository) CreatePlaceholderOrder(
	ctx context.Context,
	requesterID uint,
	paymentMethodID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := models.Order{
			RequesterID:     requesterID,
			PaymentMethodID: paymentMethodID,
			Total:           0,
			Status:          models.OrderPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		receipt := models.Receipt{
			OrderID:    order.ID,
			AmountPaid: 0,
			Status:     models.ReceiptIssued,
		}
		return tx.Create(&receipt).Error
	})
}

var _ domain.Repository = (*BookingGormRepository)(nil)
