package notify

import (
	"context"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

// Store es la cara de lectura del buzón de notificaciones.
type Store interface {
	GetNotification(ctx context.Context, id uint) (*models.Notification, error)
	SaveNotification(ctx context.Context, n *models.Notification) error
	ListForRecipient(ctx context.Context, recipientID uint) ([]models.Notification, error)
}

// ListInbox devuelve las notificaciones del destinatario, más recientes
// primero.
func ListInbox(ctx context.Context, store Store, recipientID uint) ([]models.Notification, error) {
	return store.ListForRecipient(ctx, recipientID)
}

// MarkRead marca como leída; solo el destinatario puede hacerlo.
func MarkRead(ctx context.Context, store Store, callerID, notificationID uint) (*models.Notification, error) {
	n, err := store.GetNotification(ctx, notificationID)
	if err != nil {
		return nil, httperr.ErrBusiness("notification_not_found")
	}

	if n.RecipientID != callerID {
		return nil, httperr.ErrBusiness("not_addressee")
	}

	n.Read = true
	if err := store.SaveNotification(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}
