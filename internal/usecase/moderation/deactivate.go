package moderation

import (
	"context"
	"fmt"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

// DeactivateReportedUser sanciona la denuncia: desactiva la cuenta del
// denunciado y archiva la denuncia. Solo para administradores.
type DeactivateReportedUser struct {
	repo     Repository
	notifier notify.Emitter
}

func NewDeactivateReportedUser(repo Repository, notifier notify.Emitter) *DeactivateReportedUser {
	return &DeactivateReportedUser{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *DeactivateReportedUser) Execute(
	ctx context.Context,
	reportID uint,
	message string,
) (*models.Report, error) {

	report, err := uc.repo.GetReport(ctx, reportID)
	if err != nil {
		return nil, httperr.ErrBusiness("report_not_found")
	}

	if report.Resolved {
		return nil, httperr.ErrBusiness("report_already_resolved")
	}

	target, err := uc.repo.GetUser(ctx, report.TargetID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	target.Status = models.UserInactive
	if err := uc.repo.SaveUser(ctx, target); err != nil {
		return nil, err
	}

	report.Resolved = true
	if err := uc.repo.SaveReport(ctx, report); err != nil {
		return nil, err
	}

	if message == "" {
		message = "Tu cuenta fue desactivada por incumplir las normas de la comunidad."
	}

	link := fmt.Sprintf("/mis-citas/%d", report.AppointmentID)

	uc.notifier.Notify(notify.Event{
		RecipientID:   report.TargetID,
		Title:         "Cuenta desactivada",
		Message:       message,
		Link:          link,
		AppointmentID: &report.AppointmentID,
	})

	uc.notifier.Notify(notify.Event{
		RecipientID:   report.ReporterID,
		Title:         "Denuncia resuelta",
		Message:       "Tu denuncia fue revisada y se tomaron medidas sobre la cuenta denunciada.",
		Link:          link,
		AppointmentID: &report.AppointmentID,
	})

	return report, nil
}
