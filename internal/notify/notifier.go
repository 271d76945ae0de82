package notify

import (
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

// Event es una notificación pendiente de persistir.
type Event struct {
	RecipientID   uint
	Title         string
	Message       string
	Link          string
	AppointmentID *uint
}

// Emitter lo implementan el Dispatcher (producción) y los mocks de los
// tests. Notify nunca bloquea ni devuelve error al llamador.
type Emitter interface {
	Notify(ev Event)
}

type Creator struct {
	db *gorm.DB
}

func NewCreator(db *gorm.DB) *Creator {
	return &Creator{db: db}
}

func (c *Creator) Create(ev Event) error {
	n := models.Notification{
		RecipientID:   ev.RecipientID,
		Title:         ev.Title,
		Message:       ev.Message,
		Link:          ev.Link,
		AppointmentID: ev.AppointmentID,
	}

	return c.db.Create(&n).Error
}
