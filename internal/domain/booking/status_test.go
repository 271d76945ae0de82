package booking

import (
	"testing"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("scheduled").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestTransitions(t *testing.T) {
	if next, err := Confirm(StatusPending); err != nil || next != StatusConfirmed {
		t.Fatalf("pending should confirm, got %s %v", next, err)
	}
	if next, err := Cancel(StatusPending); err != nil || next != StatusCancelled {
		t.Fatalf("pending should cancel, got %s %v", next, err)
	}

	for _, from := range []Status{StatusConfirmed, StatusCancelled, StatusCompleted} {
		if _, err := Confirm(from); !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("confirm from %s should fail, got %v", from, err)
		}
		if _, err := Cancel(from); !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("cancel from %s should fail, got %v", from, err)
		}
	}
}
