package moderation

import (
	"context"

	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

type Repository interface {
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)

	ListMessages(ctx context.Context, appointmentID uint) ([]models.Message, error)
	CountMessagesFrom(ctx context.Context, appointmentID, senderID uint) (int64, error)
	CreateMessage(ctx context.Context, msg *models.Message) error

	HasBlock(ctx context.Context, blockerID, blockedID uint) (bool, error)
	CreateBlock(ctx context.Context, block *models.Block) error

	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id uint) (*models.Report, error)
	SaveReport(ctx context.Context, report *models.Report) error

	GetUser(ctx context.Context, id uint) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	ListAdminIDs(ctx context.Context) ([]uint, error)
}
