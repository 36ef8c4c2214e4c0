package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationEvent string

const (
	EventCheckInPending  NotificationEvent = "checkin_pending_acceptance"
	EventCheckInAccepted NotificationEvent = "checkin_accepted"
	EventCheckInRejected NotificationEvent = "checkin_rejected"
	EventSessionEnded    NotificationEvent = "session_ended"
	EventRequestCreated  NotificationEvent = "checkin_request_created"
	EventRequestApproved NotificationEvent = "checkin_request_approved"
	EventRequestRejected NotificationEvent = "checkin_request_rejected"
	EventNearTrainer     NotificationEvent = "checkin_near_trainer"
)

// Notification is the payload handed to the notification sink. The
// sink is best-effort: failures are logged and never surfaced to the
// operation that produced the event.
type Notification struct {
	Event       NotificationEvent `json:"event"`
	RecipientID uuid.UUID         `json:"recipient_id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
