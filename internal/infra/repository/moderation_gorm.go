package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/usecase/moderation"
)

type ModerationGormRepository struct {
	db *gorm.DB
}

func NewModerationGormRepository(db *gorm.DB) *ModerationGormRepository {
	return &ModerationGormRepository{db: db}
}

// --------------------------------------------------
// Conversación
// --------------------------------------------------

func (r *ModerationGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ModerationGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Mensajes
// --------------------------------------------------

func (r *ModerationGormRepository) ListMessages(
	ctx context.Context,
	appointmentID uint,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *ModerationGormRepository) CountMessagesFrom(
	ctx context.Context,
	appointmentID uint,
	senderID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("appointment_id = ? AND sender_id = ?", appointmentID, senderID).
		Count(&count).Error
	return count, err
}

func (r *ModerationGormRepository) CreateMessage(
	ctx context.Context,
	msg *models.Message,
) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// --------------------------------------------------
// Bloqueos
// --------------------------------------------------

func (r *ModerationGormRepository) HasBlock(
	ctx context.Context,
	blockerID uint,
	blockedID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	return count > 0, err
}

func (r *ModerationGormRepository) CreateBlock(
	ctx context.Context,
	block *models.Block,
) error {
	return r.db.WithContext(ctx).Create(block).Error
}

// --------------------------------------------------
// Denuncias
// --------------------------------------------------

func (r *ModerationGormRepository) CreateReport(
	ctx context.Context,
	report *models.Report,
) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ModerationGormRepository) GetReport(
	ctx context.Context,
	id uint,
) (*models.Report, error) {

	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ModerationGormRepository) SaveReport(
	ctx context.Context,
	report *models.Report,
) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// --------------------------------------------------
// Usuarios
// --------------------------------------------------

func (r *ModerationGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ModerationGormRepository) SaveUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *ModerationGormRepository) ListAdminIDs(
	ctx context.Context,
) ([]uint, error) {

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Pluck("id", &ids).Error
	return ids, err
}

var _ moderation.Repository = (*ModerationGormRepository)(nil)
