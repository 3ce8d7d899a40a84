package notifier

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// Message тело сообщения, которое получает диспетчер email/SMS
type Message struct {
	EventID     string    `json:"eventId"`
	Type        string    `json:"type"`
	BookingID   int64     `json:"bookingId"`
	WorkspaceID int64     `json:"workspaceId"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// FromDomainEvent конвертирует доменное событие в сообщение брокера
func FromDomainEvent(e domain.BookingEvent) Message {
	return Message{
		EventID:     e.EventID,
		Type:        string(e.Type),
		BookingID:   e.BookingID,
		WorkspaceID: e.WorkspaceID,
		Status:      string(e.Status),
		OccurredAt:  e.OccurredAt.UTC(),
	}
}
