package moderation

import (
	"context"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

type ListMessages struct {
	repo Repository
}

func NewListMessages(repo Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

func (uc *ListMessages) Execute(
	ctx context.Context,
	caller *models.User,
	appointmentID uint,
) ([]models.Message, error) {

	conv, err := loadConversation(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if !conv.isParticipant(caller.ID) && !caller.IsAdmin() {
		return nil, httperr.ErrBusiness("not_participant")
	}

	return uc.repo.ListMessages(ctx, appointmentID)
}
