package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
)

// notifySink wraps the Notifier with the best-effort contract: enqueue
// failures are logged and never surfaced to the owning operation.
type notifySink struct {
	notifier Notifier
	logger   *slog.Logger
}

func (s *notifySink) send(ctx context.Context, now time.Time, n domain.Notification) {
	if s.notifier == nil {
		return
	}
	n.CreatedAt = now
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("notification enqueue failed",
			slog.String("event", string(n.Event)),
			slog.String("recipient_id", n.RecipientID.String()),
			slog.Any("error", err),
		)
	}
}

// Below is the explicit (event -> recipient) table for check-in
// lifecycle notifications. Recipients are derived once, here, instead
// of identity-comparison chains at each call site.

func pendingCreatedNote(c *domain.CheckIn) domain.Notification {
	return domain.Notification{
		Event:       domain.EventCheckInPending,
		RecipientID: c.UserID,
		Title:       "Check-in confirmation needed",
		Body:        "A trainer checked you in. Confirm your presence.",
		Data: map[string]string{
			"checkin_id": c.ID.String(),
			"gym_id":     c.GymID.String(),
		},
	}
}

func acceptedNote(c *domain.CheckIn) (domain.Notification, bool) {
	if c.InitiatedBy == nil || *c.InitiatedBy == c.UserID {
		return domain.Notification{}, false
	}
	return domain.Notification{
		Event:       domain.EventCheckInAccepted,
		RecipientID: *c.InitiatedBy,
		Title:       "Check-in accepted",
		Body:        "The student confirmed the check-in.",
		Data: map[string]string{
			"checkin_id": c.ID.String(),
			"student_id": c.UserID.String(),
		},
	}, true
}

// rejectionRecipients lists everyone with a stake in the check-in,
// minus the actor who performed the rejection.
func rejectionRecipients(c *domain.CheckIn, actorID uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{actorID: true}
	var out []uuid.UUID

	add := func(id uuid.UUID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	add(c.UserID)
	if c.InitiatedBy != nil {
		add(*c.InitiatedBy)
	}
	if c.ApprovedBy != nil {
		add(*c.ApprovedBy)
	}
	return out
}

func rejectedNote(c *domain.CheckIn, recipientID uuid.UUID) domain.Notification {
	return domain.Notification{
		Event:       domain.EventCheckInRejected,
		RecipientID: recipientID,
		Title:       "Check-in rejected",
		Body:        "The check-in was not confirmed.",
		Data: map[string]string{
			"checkin_id": c.ID.String(),
		},
	}
}

func sessionEndedNote(studentID, trainerID uuid.UUID) domain.Notification {
	return domain.Notification{
		Event:       domain.EventSessionEnded,
		RecipientID: studentID,
		Title:       "Training session ended",
		Body:        "Your trainer ended the session. You were checked out.",
		Data: map[string]string{
			"trainer_id": trainerID.String(),
		},
	}
}

func requestCreatedNote(r *domain.CheckInRequest) domain.Notification {
	return domain.Notification{
		Event:       domain.EventRequestCreated,
		RecipientID: r.ApproverID,
		Title:       "Check-in request",
		Body:        "A student asked for check-in approval.",
		Data: map[string]string{
			"request_id": r.ID.String(),
			"gym_id":     r.GymID.String(),
		},
	}
}

func requestRespondedNote(r *domain.CheckInRequest, approved bool) domain.Notification {
	event := domain.EventRequestRejected
	title := "Check-in request declined"
	body := "Your check-in request was declined."
	if approved {
		event = domain.EventRequestApproved
		title = "Check-in request approved"
		body = "Your check-in request was approved."
	}
	return domain.Notification{
		Event:       event,
		RecipientID: r.UserID,
		Title:       title,
		Body:        body,
		Data: map[string]string{
			"request_id": r.ID.String(),
		},
	}
}

func nearTrainerNote(c *domain.CheckIn, trainerID uuid.UUID) domain.Notification {
	return domain.Notification{
		Event:       domain.EventNearTrainer,
		RecipientID: trainerID,
		Title:       "Student check-in",
		Body:        "A student checked in near you.",
		Data: map[string]string{
			"checkin_id": c.ID.String(),
			"student_id": c.UserID.String(),
		},
	}
}
