package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

type NotifyGormRepository struct {
	db *gorm.DB
}

func NewNotifyGormRepository(db *gorm.DB) *NotifyGormRepository {
	return &NotifyGormRepository{db: db}
}

func (r *NotifyGormRepository) GetNotification(
	ctx context.Context,
	id uint,
) (*models.Notification, error) {

	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotifyGormRepository) SaveNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *NotifyGormRepository) ListForRecipient(
	ctx context.Context,
	recipientID uint,
) ([]models.Notification, error) {

	var list []models.Notification
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

var _ notify.Store = (*NotifyGormRepository)(nil)
