package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "github.com/eclipse7-9/enlistment-layout/internal/domain/booking"
	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
	"github.com/eclipse7-9/enlistment-layout/internal/notify"
)

// ------------------------------
// Mocks
// ------------------------------

type fakeRepo struct {
	pets     map[uint]*models.Pet
	services map[uint]*models.Service
	methods  map[uint]*models.PaymentMethod

	appointments map[uint]*models.Appointment
	nextID       uint

	placeholderCalls int
	placeholderErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		pets:         make(map[uint]*models.Pet),
		services:     make(map[uint]*models.Service),
		methods:      make(map[uint]*models.PaymentMethod),
		appointments: make(map[uint]*models.Appointment),
	}
}

func (r *fakeRepo) GetPet(_ context.Context, id uint) (*models.Pet, error) {
	if pet, ok := r.pets[id]; ok {
		return pet, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetPaymentMethod(_ context.Context, id uint) (*models.PaymentMethod, error) {
	if m, ok := r.methods[id]; ok {
		return m, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		return ap, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) CreatePlaceholderOrder(_ context.Context, _, _ uint) error {
	r.placeholderCalls++
	return r.placeholderErr
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeEmitter struct {
	events []notify.Event
}

func (e *fakeEmitter) Notify(ev notify.Event) {
	e.events = append(e.events, ev)
}

// ------------------------------
// Fixtures
// ------------------------------

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.pets[1] = &models.Pet{ID: 1, Name: "Rocky", OwnerID: 10}
	repo.services[2] = &models.Service{ID: 2, Type: "Baño y peluquería", OwnerID: 20, Price: 50}
	repo.methods[3] = &models.PaymentMethod{ID: 3, Type: "nequi", OwnerID: 10}
	return repo
}

func client() *models.User {
	return &models.User{ID: 10, Role: models.RoleClient}
}

func validInput(u *models.User) CreateAppointmentInput {
	return CreateAppointmentInput{
		Requester:       u,
		PetID:           1,
		ServiceID:       2,
		PaymentMethodID: 3,
		Date:            "2026-09-15",
		Time:            "10:30",
	}
}

// ------------------------------
// Create
// ------------------------------

func TestCreateAppointment(t *testing.T) {
	t.Run("creates pending appointment and notifies service owner", func(t *testing.T) {
		repo := seededRepo()
		emitter := &fakeEmitter{}
		uc := NewCreateAppointment(repo, emitter)

		ap, err := uc.Execute(context.Background(), validInput(client()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if ap.Status != string(domain.StatusPending) {
			t.Fatalf("expected pending, got %s", ap.Status)
		}
		if ap.PaymentMethod != "nequi" {
			t.Fatalf("expected payment method snapshot nequi, got %s", ap.PaymentMethod)
		}
		if ap.Time != "10:30:00" {
			t.Fatalf("expected normalized time, got %s", ap.Time)
		}

		if len(emitter.events) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(emitter.events))
		}
		if emitter.events[0].RecipientID != 20 {
			t.Fatalf("notification should go to service owner, went to %d", emitter.events[0].RecipientID)
		}
		if !strings.Contains(emitter.events[0].Message, "Baño y peluquería") {
			t.Fatalf("notification should name the service type, got %q", emitter.events[0].Message)
		}
		if repo.placeholderCalls != 1 {
			t.Fatalf("expected 1 placeholder order, got %d", repo.placeholderCalls)
		}
	})

	t.Run("rejects pet of another user", func(t *testing.T) {
		repo := seededRepo()
		repo.pets[1].OwnerID = 99
		uc := NewCreateAppointment(repo, &fakeEmitter{})

		_, err := uc.Execute(context.Background(), validInput(client()))
		if !httperr.IsBusiness(err, "pet_forbidden") {
			t.Fatalf("expected pet_forbidden, got %v", err)
		}
		if len(repo.appointments) != 0 {
			t.Fatal("no appointment should be created")
		}
	})

	t.Run("rejects payment method of another user", func(t *testing.T) {
		repo := seededRepo()
		repo.methods[3].OwnerID = 99
		uc := NewCreateAppointment(repo, &fakeEmitter{})

		_, err := uc.Execute(context.Background(), validInput(client()))
		if !httperr.IsBusiness(err, "payment_method_forbidden") {
			t.Fatalf("expected payment_method_forbidden, got %v", err)
		}
	})

	t.Run("rejects malformed date and time", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCreateAppointment(repo, &fakeEmitter{})

		in := validInput(client())
		in.Date = "15/09/2026"
		if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date") {
			t.Fatalf("expected invalid_date, got %v", err)
		}

		in = validInput(client())
		in.Time = "25:99"
		if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_time") {
			t.Fatalf("expected invalid_time, got %v", err)
		}
	})

	t.Run("placeholder order failure does not abort the booking", func(t *testing.T) {
		repo := seededRepo()
		repo.placeholderErr = errors.New("orders table unavailable")
		emitter := &fakeEmitter{}
		uc := NewCreateAppointment(repo, emitter)

		ap, err := uc.Execute(context.Background(), validInput(client()))
		if err != nil {
			t.Fatalf("booking should survive placeholder failure: %v", err)
		}
		if ap.ID == 0 {
			t.Fatal("appointment should be persisted")
		}
		if len(emitter.events) != 1 {
			t.Fatalf("notification should still fire, got %d", len(emitter.events))
		}
	})
}

// ------------------------------
// Confirm / Cancel
// ------------------------------

func TestConfirmAppointment(t *testing.T) {
	provider := &models.User{ID: 20, Role: models.RoleProvider}

	t.Run("service owner confirms a pending appointment", func(t *testing.T) {
		repo := seededRepo()
		emitter := &fakeEmitter{}
		created, _ := NewCreateAppointment(repo, &fakeEmitter{}).Execute(context.Background(), validInput(client()))

		ap, err := NewConfirmAppointment(repo, emitter).Execute(context.Background(), provider, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ap.Status != string(domain.StatusConfirmed) {
			t.Fatalf("expected confirmed, got %s", ap.Status)
		}
		if len(emitter.events) != 1 || emitter.events[0].RecipientID != 10 {
			t.Fatal("requester should be notified of the confirmation")
		}
		if !strings.Contains(emitter.events[0].Message, "Baño y peluquería") {
			t.Fatalf("notification should name the service type, got %q", emitter.events[0].Message)
		}
	})

	t.Run("only the service owner may confirm", func(t *testing.T) {
		repo := seededRepo()
		created, _ := NewCreateAppointment(repo, &fakeEmitter{}).Execute(context.Background(), validInput(client()))

		_, err := NewConfirmAppointment(repo, &fakeEmitter{}).Execute(context.Background(), client(), created.ID)
		if !httperr.IsBusiness(err, "not_service_owner") {
			t.Fatalf("expected not_service_owner, got %v", err)
		}
	})

	t.Run("confirming twice fails", func(t *testing.T) {
		repo := seededRepo()
		created, _ := NewCreateAppointment(repo, &fakeEmitter{}).Execute(context.Background(), validInput(client()))

		uc := NewConfirmAppointment(repo, &fakeEmitter{})
		if _, err := uc.Execute(context.Background(), provider, created.ID); err != nil {
			t.Fatalf("first confirm failed: %v", err)
		}
		if _, err := uc.Execute(context.Background(), provider, created.ID); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state, got %v", err)
		}
	})
}

func TestCancelAppointment(t *testing.T) {
	provider := &models.User{ID: 20, Role: models.RoleProvider}

	t.Run("service owner cancels a pending appointment", func(t *testing.T) {
		repo := seededRepo()
		emitter := &fakeEmitter{}
		created, _ := NewCreateAppointment(repo, &fakeEmitter{}).Execute(context.Background(), validInput(client()))

		ap, err := NewCancelAppointment(repo, emitter).Execute(context.Background(), provider, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ap.Status != string(domain.StatusCancelled) {
			t.Fatalf("expected cancelled, got %s", ap.Status)
		}
		if len(emitter.events) != 1 || emitter.events[0].RecipientID != 10 {
			t.Fatal("requester should be notified of the cancellation")
		}
	})

	t.Run("cancelling a confirmed appointment fails", func(t *testing.T) {
		repo := seededRepo()
		created, _ := NewCreateAppointment(repo, &fakeEmitter{}).Execute(context.Background(), validInput(client()))

		if _, err := NewConfirmAppointment(repo, &fakeEmitter{}).Execute(context.Background(), provider, created.ID); err != nil {
			t.Fatalf("confirm failed: %v", err)
		}
		if _, err := NewCancelAppointment(repo, &fakeEmitter{}).Execute(context.Background(), provider, created.ID); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state, got %v", err)
		}
	})
}
