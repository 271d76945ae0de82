package notify

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

type fakeStore struct {
	byID map[uint]*models.Notification
}

func (s *fakeStore) GetNotification(_ context.Context, id uint) (*models.Notification, error) {
	if n, ok := s.byID[id]; ok {
		return n, nil
	}
	return nil, errors.New("record not found")
}

func (s *fakeStore) SaveNotification(_ context.Context, n *models.Notification) error {
	s.byID[n.ID] = n
	return nil
}

func (s *fakeStore) ListForRecipient(_ context.Context, recipientID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range s.byID {
		if n.RecipientID == recipientID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

var _ Store = (*fakeStore)(nil)

func seededStore() *fakeStore {
	now := time.Now()
	return &fakeStore{byID: map[uint]*models.Notification{
		1: {ID: 1, RecipientID: 10, Title: "Nueva reserva", CreatedAt: now.Add(-2 * time.Hour)},
		2: {ID: 2, RecipientID: 10, Title: "Nuevo mensaje", CreatedAt: now},
		3: {ID: 3, RecipientID: 20, Title: "Denuncia revisada", CreatedAt: now.Add(-time.Hour)},
	}}
}

func TestListInbox(t *testing.T) {
	store := seededStore()

	list, err := ListInbox(context.Background(), store, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(list))
	}
	if list[0].ID != 2 {
		t.Fatal("newest notification should come first")
	}
}

func TestMarkRead(t *testing.T) {
	t.Run("addressee marks read", func(t *testing.T) {
		store := seededStore()

		n, err := MarkRead(context.Background(), store, 10, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.Read {
			t.Fatal("notification should be read")
		}
	})

	t.Run("anyone else is rejected", func(t *testing.T) {
		store := seededStore()

		_, err := MarkRead(context.Background(), store, 20, 1)
		if !httperr.IsBusiness(err, "not_addressee") {
			t.Fatalf("expected not_addressee, got %v", err)
		}
		if store.byID[1].Read {
			t.Fatal("notification must stay unread")
		}
	})

	t.Run("missing notification", func(t *testing.T) {
		store := seededStore()

		_, err := MarkRead(context.Background(), store, 10, 99)
		if !httperr.IsBusiness(err, "notification_not_found") {
			t.Fatalf("expected notification_not_found, got %v", err)
		}
	})
}
