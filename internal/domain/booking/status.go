package booking

import "github.com/eclipse7-9/enlistment-layout/internal/httperr"

// Status es el estado del ciclo de vida de una cita.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Confirm solo es válido desde pending.
func Confirm(current Status) (Status, error) {
	if current != StatusPending {
		return current, httperr.ErrBusiness("invalid_state")
	}
	return StatusConfirmed, nil
}

// Cancel solo es válido desde pending; una cita confirmada ya no se
// cancela por esta vía.
func Cancel(current Status) (Status, error) {
	if current != StatusPending {
		return current, httperr.ErrBusiness("invalid_state")
	}
	return StatusCancelled, nil
}
