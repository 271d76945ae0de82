package booking

import (
	"context"
	"fmt"

	domain "github.com/eclipse7-9/enlistment-layout/internal/domain/booking"
	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

type CancelAppointment struct {
	repo     domain.Repository
	notifier notify.Emitter
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier notify.Emitter,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	caller *models.User,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	service, err := uc.repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if service.OwnerID != caller.ID {
		return nil, httperr.ErrBusiness("not_service_owner")
	}

	next, err := domain.Cancel(domain.Status(ap.Status))
	if err != nil {
		return nil, err
	}
	ap.Status = string(next)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Notify(notify.Event{
		RecipientID:   ap.RequesterID,
		Title:         "Reserva cancelada",
		Message:       fmt.Sprintf("Tu reserva de %s fue cancelada por el proveedor.", service.Type),
		Link:          fmt.Sprintf("/mis-citas/%d", ap.ID),
		AppointmentID: &ap.ID,
	})

	return ap, nil
}
