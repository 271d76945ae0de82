package booking

import (
	"context"

	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

// Repository reúne los accesos a datos que necesitan los casos de uso
// de citas. La implementación real vive en infra/repository.
type Repository interface {
	GetPet(ctx context.Context, id uint) (*models.Pet, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetPaymentMethod(ctx context.Context, id uint) (*models.PaymentMethod, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// CreatePlaceholderOrder registra el pedido pendiente en cero y su
	// recibo emitido que acompañan a cada cita nueva.
	CreatePlaceholderOrder(ctx context.Context, requesterID, paymentMethodID uint) error
}
