package moderation

import (
	"context"
	"fmt"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

// ======================================================
// USE CASE
// ======================================================

type ReportAppointment struct {
	repo     Repository
	notifier notify.Emitter
}

func NewReportAppointment(repo Repository, notifier notify.Emitter) *ReportAppointment {
	return &ReportAppointment{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReportAppointment) Execute(
	ctx context.Context,
	caller *models.User,
	appointmentID uint,
	reason string,
	description string,
) (*models.Report, error) {

	if reason == "" {
		return nil, httperr.ErrBusiness("reason_required")
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
	// 2️⃣ Denuncia contra la contraparte
	// --------------------------------------------------
	report := &models.Report{
		AppointmentID: appointmentID,
		ReporterID:    caller.ID,
		TargetID:      conv.counterpart(caller.ID),
		Reason:        reason,
		Description:   description,
	}

	if err := uc.repo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ El proveedor que denuncia bloquea al cliente
	// --------------------------------------------------
	if caller.ID == conv.providerID {
		blocked, err := uc.repo.HasBlock(ctx, conv.providerID, conv.requesterID)
		if err != nil {
			return nil, err
		}
		if !blocked {
			block := &models.Block{
				BlockerID: conv.providerID,
				BlockedID: conv.requesterID,
			}
			if err := uc.repo.CreateBlock(ctx, block); err != nil {
				return nil, err
			}
		}
	}

	// --------------------------------------------------
	// 4️⃣ Aviso a todos los administradores
	// --------------------------------------------------
	adminIDs, err := uc.repo.ListAdminIDs(ctx)
	if err != nil {
		return report, nil
	}

	for _, adminID := range adminIDs {
		uc.notifier.Notify(notify.Event{
			RecipientID:   adminID,
			Title:         "Nueva denuncia",
			Message:       fmt.Sprintf("Hay una nueva denuncia sobre la cita %d: %s", appointmentID, reason),
			Link:          fmt.Sprintf("/admin/denuncias/%d", report.ID),
			AppointmentID: &appointmentID,
		})
	}

	return report, nil
}
