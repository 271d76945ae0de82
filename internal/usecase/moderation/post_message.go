package moderation

import (
	"context"
	"fmt"
	"strings"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

// ======================================================
// USE CASE
// ======================================================

type PostMessage struct {
	repo     Repository
	notifier notify.Emitter
}

func NewPostMessage(repo Repository, notifier notify.Emitter) *PostMessage {
	return &PostMessage{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PostMessage) Execute(
	ctx context.Context,
	caller *models.User,
	appointmentID uint,
	text string,
) (*models.Message, error) {

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, httperr.ErrBusiness("empty_message")
	}

	// --------------------------------------------------
	// 1️⃣ Conversación (solo participantes)
	// --------------------------------------------------
	conv, err := loadConversation(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if !conv.isParticipant(caller.ID) {
		return nil, httperr.ErrBusiness("not_participant")
	}

	// --------------------------------------------------
	// 2️⃣ Reglas del proveedor
	// --------------------------------------------------
	if caller.ID == conv.providerID {
		blocked, err := uc.repo.HasBlock(ctx, conv.providerID, conv.requesterID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, httperr.ErrBusiness("sender_blocked")
		}

		sent, err := uc.repo.CountMessagesFrom(ctx, appointmentID, conv.providerID)
		if err != nil {
			return nil, err
		}
		if sent > 0 {
			return nil, httperr.ErrBusiness("provider_message_exists")
		}
	}

	// --------------------------------------------------
	// 3️⃣ Mensaje + aviso a la contraparte
	// --------------------------------------------------
	msg := &models.Message{
		AppointmentID: appointmentID,
		SenderID:      caller.ID,
		ReceiverID:    conv.counterpart(caller.ID),
		Text:          text,
	}

	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	uc.notifier.Notify(notify.Event{
		RecipientID:   msg.ReceiverID,
		Title:         "Nuevo mensaje",
		Message:       fmt.Sprintf("%s te ha enviado un mensaje.", caller.Name),
		Link:          fmt.Sprintf("/mis-citas/%d", appointmentID),
		AppointmentID: &appointmentID,
	})

	return msg, nil
}
