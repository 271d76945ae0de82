package moderation

import (
	"context"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

// CheckBlocked indica si el proveedor de la cita tiene bloqueado al
// solicitante (y por tanto no puede escribirle).
type CheckBlocked struct {
	repo Repository
}

func NewCheckBlocked(repo Repository) *CheckBlocked {
	return &CheckBlocked{repo: repo}
}

func (uc *CheckBlocked) Execute(
	ctx context.Context,
	caller *models.User,
	appointmentID uint,
) (bool, error) {

	conv, err := loadConversation(ctx, uc.repo, appointmentID)
	if err != nil {
		return false, err
	}

	if !conv.isParticipant(caller.ID) && !caller.IsAdmin() {
		return false, httperr.ErrBusiness("not_participant")
	}

	return uc.repo.HasBlock(ctx, conv.providerID, conv.requesterID)
}
