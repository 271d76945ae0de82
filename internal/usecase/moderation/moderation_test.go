package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

// ------------------------------
// Mocks
// ------------------------------

type fakeRepo struct {
	appointments map[uint]*models.Appointment
	services     map[uint]*models.Service
	users        map[uint]*models.User

	messages []*models.Message
	blocks   []*models.Block
	reports  map[uint]*models.Report
	adminIDs []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uint]*models.Appointment),
		services:     make(map[uint]*models.Service),
		users:        make(map[uint]*models.User),
		reports:      make(map[uint]*models.Report),
	}
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		return ap, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) ListMessages(_ context.Context, appointmentID uint) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.messages {
		if m.AppointmentID == appointmentID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountMessagesFrom(_ context.Context, appointmentID, senderID uint) (int64, error) {
	var n int64
	for _, m := range r.messages {
		if m.AppointmentID == appointmentID && m.SenderID == senderID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) CreateMessage(_ context.Context, msg *models.Message) error {
	msg.ID = uint(len(r.messages) + 1)
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeRepo) HasBlock(_ context.Context, blockerID, blockedID uint) (bool, error) {
	for _, b := range r.blocks {
		if b.BlockerID == blockerID && b.BlockedID == blockedID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateBlock(_ context.Context, block *models.Block) error {
	block.ID = uint(len(r.blocks) + 1)
	r.blocks = append(r.blocks, block)
	return nil
}

func (r *fakeRepo) CreateReport(_ context.Context, report *models.Report) error {
	report.ID = uint(len(r.reports) + 1)
	r.reports[report.ID] = report
	return nil
}

func (r *fakeRepo) GetReport(_ context.Context, id uint) (*models.Report, error) {
	if rep, ok := r.reports[id]; ok {
		return rep, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) SaveReport(_ context.Context, report *models.Report) error {
	r.reports[report.ID] = report
	return nil
}

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) SaveUser(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeRepo) ListAdminIDs(_ context.Context) ([]uint, error) {
	return r.adminIDs, nil
}

var _ Repository = (*fakeRepo)(nil)

type fakeEmitter struct {
	events []notify.Event
}

func (e *fakeEmitter) Notify(ev notify.Event) {
	e.events = append(e.events, ev)
}

// ------------------------------
// Fixtures
// ------------------------------

const (
	requesterID = uint(10)
	providerID  = uint(20)
	outsiderID  = uint(30)
)

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, RequesterID: requesterID, ServiceID: 2}
	repo.services[2] = &models.Service{ID: 2, OwnerID: providerID}
	repo.users[requesterID] = &models.User{ID: requesterID, Role: models.RoleClient, Status: models.UserActive}
	repo.users[providerID] = &models.User{ID: providerID, Role: models.RoleProvider, Status: models.UserActive}
	repo.adminIDs = []uint{1, 2}
	return repo
}

func requester() *models.User { return &models.User{ID: requesterID, Role: models.RoleClient, Name: "Ana"} }
func provider() *models.User  { return &models.User{ID: providerID, Role: models.RoleProvider, Name: "Luis"} }
func outsider() *models.User  { return &models.User{ID: outsiderID, Role: models.RoleClient} }

// ------------------------------
// Messages
// ------------------------------

func TestPostMessage(t *testing.T) {
	t.Run("requester may send several messages", func(t *testing.T) {
		repo := seededRepo()
		uc := NewPostMessage(repo, &fakeEmitter{})

		for i := 0; i < 3; i++ {
			if _, err := uc.Execute(context.Background(), requester(), 1, "hola"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if len(repo.messages) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(repo.messages))
		}
	})

	t.Run("message goes to the counterpart and notifies them", func(t *testing.T) {
		repo := seededRepo()
		emitter := &fakeEmitter{}
		uc := NewPostMessage(repo, emitter)

		msg, err := uc.Execute(context.Background(), requester(), 1, "hola")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.ReceiverID != providerID {
			t.Fatalf("expected receiver %d, got %d", providerID, msg.ReceiverID)
		}
		if len(emitter.events) != 1 || emitter.events[0].RecipientID != providerID {
			t.Fatal("counterpart should be notified")
		}
	})

	t.Run("provider is limited to a single message per appointment", func(t *testing.T) {
		repo := seededRepo()
		uc := NewPostMessage(repo, &fakeEmitter{})

		if _, err := uc.Execute(context.Background(), provider(), 1, "gracias"); err != nil {
			t.Fatalf("first provider message failed: %v", err)
		}
		_, err := uc.Execute(context.Background(), provider(), 1, "otra cosa")
		if !httperr.IsBusiness(err, "provider_message_exists") {
			t.Fatalf("expected provider_message_exists, got %v", err)
		}
		if len(repo.messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(repo.messages))
		}
	})

	t.Run("blocked provider cannot write", func(t *testing.T) {
		repo := seededRepo()
		repo.blocks = append(repo.blocks, &models.Block{BlockerID: providerID, BlockedID: requesterID})
		uc := NewPostMessage(repo, &fakeEmitter{})

		_, err := uc.Execute(context.Background(), provider(), 1, "hola")
		if !httperr.IsBusiness(err, "sender_blocked") {
			t.Fatalf("expected sender_blocked, got %v", err)
		}
	})

	t.Run("outsiders cannot write", func(t *testing.T) {
		uc := NewPostMessage(seededRepo(), &fakeEmitter{})

		_, err := uc.Execute(context.Background(), outsider(), 1, "hola")
		if !httperr.IsBusiness(err, "not_participant") {
			t.Fatalf("expected not_participant, got %v", err)
		}
	})
}

// ------------------------------
// Reports
// ------------------------------

func TestReportAppointment(t *testing.T) {
	t.Run("provider report blocks the requester exactly once", func(t *testing.T) {
		repo := seededRepo()
		uc := NewReportAppointment(repo, &fakeEmitter{})

		if _, err := uc.Execute(context.Background(), provider(), 1, "spam", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.blocks) != 1 {
			t.Fatalf("expected 1 block, got %d", len(repo.blocks))
		}
		if repo.blocks[0].BlockerID != providerID || repo.blocks[0].BlockedID != requesterID {
			t.Fatalf("block has wrong direction: %+v", repo.blocks[0])
		}

		// Una segunda denuncia no duplica el bloqueo.
		if _, err := uc.Execute(context.Background(), provider(), 1, "insultos", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.blocks) != 1 {
			t.Fatalf("expected the block to stay unique, got %d", len(repo.blocks))
		}
	})

	t.Run("requester report creates no block", func(t *testing.T) {
		repo := seededRepo()
		uc := NewReportAppointment(repo, &fakeEmitter{})

		report, err := uc.Execute(context.Background(), requester(), 1, "mal servicio", "detalle")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.blocks) != 0 {
			t.Fatalf("expected no blocks, got %d", len(repo.blocks))
		}
		if report.TargetID != providerID {
			t.Fatalf("expected target %d, got %d", providerID, report.TargetID)
		}
	})

	t.Run("every admin is notified", func(t *testing.T) {
		repo := seededRepo()
		emitter := &fakeEmitter{}
		uc := NewReportAppointment(repo, emitter)

		if _, err := uc.Execute(context.Background(), requester(), 1, "mal servicio", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emitter.events) != len(repo.adminIDs) {
			t.Fatalf("expected %d notifications, got %d", len(repo.adminIDs), len(emitter.events))
		}
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		uc := NewReportAppointment(seededRepo(), &fakeEmitter{})

		_, err := uc.Execute(context.Background(), requester(), 1, "", "")
		if !httperr.IsBusiness(err, "reason_required") {
			t.Fatalf("expected reason_required, got %v", err)
		}
	})
}

// ------------------------------
// Admin resolution
// ------------------------------

func TestResolveReport(t *testing.T) {
	newReport := func(repo *fakeRepo) *models.Report {
		report := &models.Report{AppointmentID: 1, ReporterID: requesterID, TargetID: providerID, Reason: "spam"}
		_ = repo.CreateReport(context.Background(), report)
		return report
	}

	t.Run("invalidate resolves and notifies both parties", func(t *testing.T) {
		repo := seededRepo()
		report := newReport(repo)
		emitter := &fakeEmitter{}

		resolved, err := NewInvalidateReport(repo, emitter).Execute(context.Background(), report.ID, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resolved.Resolved {
			t.Fatal("report should be resolved")
		}
		if len(emitter.events) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(emitter.events))
		}
	})

	t.Run("invalidate twice fails", func(t *testing.T) {
		repo := seededRepo()
		report := newReport(repo)
		uc := NewInvalidateReport(repo, &fakeEmitter{})

		if _, err := uc.Execute(context.Background(), report.ID, ""); err != nil {
			t.Fatalf("first resolve failed: %v", err)
		}
		if _, err := uc.Execute(context.Background(), report.ID, ""); !httperr.IsBusiness(err, "report_already_resolved") {
			t.Fatalf("expected report_already_resolved, got %v", err)
		}
	})

	t.Run("deactivate turns the target inactive and resolves", func(t *testing.T) {
		repo := seededRepo()
		report := newReport(repo)
		emitter := &fakeEmitter{}

		resolved, err := NewDeactivateReportedUser(repo, emitter).Execute(context.Background(), report.ID, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resolved.Resolved {
			t.Fatal("report should be resolved")
		}
		if repo.users[providerID].Status != models.UserInactive {
			t.Fatalf("target should be inactive, got %s", repo.users[providerID].Status)
		}
		if len(emitter.events) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(emitter.events))
		}
	})
}

// ------------------------------
// Blocked check
// ------------------------------

func TestCheckBlocked(t *testing.T) {
	repo := seededRepo()
	uc := NewCheckBlocked(repo)

	blocked, err := uc.Execute(context.Background(), requester(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocked {
		t.Fatal("nothing blocked yet")
	}

	repo.blocks = append(repo.blocks, &models.Block{BlockerID: providerID, BlockedID: requesterID})

	blocked, err = uc.Execute(context.Background(), requester(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blocked {
		t.Fatal("block should be visible to the requester")
	}
}
