package moderation

import (
	"context"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

// conversation son las dos partes de una cita: quien reservó y el dueño
// del servicio.
type conversation struct {
	appointment *models.Appointment
	requesterID uint
	providerID  uint
}

func (c conversation) isParticipant(userID uint) bool {
	return userID == c.requesterID || userID == c.providerID
}

func (c conversation) counterpart(userID uint) uint {
	if userID == c.requesterID {
		return c.providerID
	}
	return c.requesterID
}

func loadConversation(ctx context.Context, repo Repository, appointmentID uint) (*conversation, error) {
	ap, err := repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	service, err := repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	return &conversation{
		appointment: ap,
		requesterID: ap.RequesterID,
		providerID:  service.OwnerID,
	}, nil
}
