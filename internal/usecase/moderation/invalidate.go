package moderation

import (
	"context"
	"fmt"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

// InvalidateReport archiva una denuncia sin sanción. Solo lo invoca un
// administrador (el handler lo garantiza).
type InvalidateReport struct {
	repo     Repository
	notifier notify.Emitter
}

func NewInvalidateReport(repo Repository, notifier notify.Emitter) *InvalidateReport {
	return &InvalidateReport{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *InvalidateReport) Execute(
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

	report.Resolved = true
	if err := uc.repo.SaveReport(ctx, report); err != nil {
		return nil, err
	}

	if message == "" {
		message = "Tras revisar la denuncia, no se encontraron faltas a las normas de la comunidad."
	}

	link := fmt.Sprintf("/mis-citas/%d", report.AppointmentID)

	uc.notifier.Notify(notify.Event{
		RecipientID:   report.ReporterID,
		Title:         "Denuncia revisada",
		Message:       message,
		Link:          link,
		AppointmentID: &report.AppointmentID,
	})

	uc.notifier.Notify(notify.Event{
		RecipientID:   report.TargetID,
		Title:         "Denuncia revisada",
		Message:       "Una denuncia en tu contra fue revisada y descartada.",
		Link:          link,
		AppointmentID: &report.AppointmentID,
	})

	return report, nil
}
