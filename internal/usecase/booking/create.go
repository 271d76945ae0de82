package booking

import (
	"context"
	"fmt"

	"github.com/eclipse7-9/enlistment-layout/internal/besteffort"
	domain "github.com/eclipse7-9/enlistment-layout/internal/domain/booking"
	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
	"github.com/eclipse7-9/enlistment-layout/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Requester *models.User

	PetID           uint
	ServiceID       uint
	PaymentMethodID uint

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier notify.Emitter
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier notify.Emitter,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Mascota (debe pertenecer al solicitante)
	// --------------------------------------------------
	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_not_found")
	}

	if pet.OwnerID != in.Requester.ID && !in.Requester.IsAdmin() {
		return nil, httperr.ErrBusiness("pet_forbidden")
	}

	// --------------------------------------------------
	// 2️⃣ Servicio
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Método de pago (del solicitante)
	// --------------------------------------------------
	method, err := uc.repo.GetPaymentMethod(ctx, in.PaymentMethodID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_method_not_found")
	}

	if method.OwnerID != in.Requester.ID && !in.Requester.IsAdmin() {
		return nil, httperr.ErrBusiness("payment_method_forbidden")
	}

	// --------------------------------------------------
	// 4️⃣ Fecha y hora
	// --------------------------------------------------
	date, err := validators.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	clock, err := validators.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 5️⃣ Creación de la cita
	// --------------------------------------------------
	ap := &models.Appointment{
		RequesterID:   in.Requester.ID,
		PetID:         pet.ID,
		ServiceID:     service.ID,
		Date:          date,
		Time:          clock,
		PaymentMethod: method.Type,
		Status:        string(domain.StatusPending),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Pedido provisional (su fallo no anula la cita)
	// --------------------------------------------------
	besteffort.Do("placeholder order", func() error {
		return uc.repo.CreatePlaceholderOrder(ctx, in.Requester.ID, method.ID)
	})

	// --------------------------------------------------
	// 7️⃣ Aviso al dueño del servicio
	// --------------------------------------------------
	uc.notifier.Notify(notify.Event{
		RecipientID:   service.OwnerID,
		Title:         "Nueva reserva",
		Message:       fmt.Sprintf("Tienes una nueva reserva para %s el %s a las %s.", service.Type, in.Date, clock),
		Link:          fmt.Sprintf("/mis-citas/%d", ap.ID),
		AppointmentID: &ap.ID,
	})

	return ap, nil
}
