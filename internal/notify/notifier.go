package notify

import (
	"context"
	"fmt"

	"kairos/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event types pushed on the moderation feed.
const (
	EventUserRegistered     = "user_registered"
	EventPrayerReceived     = "prayer_received"
	EventPromotionRequested = "promotion_requested"
)

type feedMessage struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

// Notifier fans moderation events out to the structured log, the
// moderator mailbox and the live websocket feed. Everything is
// at-most-once and best-effort: failures are logged and swallowed so a
// notification problem can never fail the triggering operation.
type Notifier struct {
	log            *zap.Logger
	mailer         Mailer
	hub            *Hub
	moderatorEmail string
	mailFrom       string
}

func NewNotifier(log *zap.Logger, mailer Mailer, hub *Hub, moderatorEmail, mailFrom string) *Notifier {
	return &Notifier{
		log:            log,
		mailer:         mailer,
		hub:            hub,
		moderatorEmail: moderatorEmail,
		mailFrom:       mailFrom,
	}
}

func (n *Notifier) UserRegistered(ctx context.Context, u *domain.User) {
	msg := fmt.Sprintf("New access request from %s (%s)", u.Name, u.Email)
	n.emit(EventUserRegistered, msg, "New access request", u)
}

func (n *Notifier) PrayerReceived(ctx context.Context, p *domain.PrayerRequest, authorName string) {
	if p.IsAnonymous {
		authorName = "Anonymous"
	}
	msg := fmt.Sprintf("New prayer request from %s", authorName)
	n.emit(EventPrayerReceived, msg, "New prayer request", p)
}

func (n *Notifier) PromotionRequested(ctx context.Context, u *domain.User) {
	role := ""
	if u.RequestedRole != nil {
		role = string(*u.RequestedRole)
	}
	msg := fmt.Sprintf("%s requested promotion to %s", u.Name, role)
	n.emit(EventPromotionRequested, msg, "Promotion request", u)
}

func (n *Notifier) emit(eventType, message, subject string, payload any) {
	id := uuid.NewString()

	if n.log != nil {
		n.log.Info("moderation_event",
			zap.String("event_id", id),
			zap.String("type", eventType),
			zap.String("message", message),
		)
	}

	if n.mailer != nil && n.moderatorEmail != "" {
		if err := n.mailer.SendMail(&Email{
			Subject: subject,
			Body:    message,
			From:    n.mailFrom,
			To:      []string{n.moderatorEmail},
		}); err != nil && n.log != nil {
			n.log.Warn("moderation_mail_failed",
				zap.String("event_id", id),
				zap.Error(err),
			)
		}
	}

	if n.hub != nil {
		n.hub.Broadcast(feedMessage{
			ID:      id,
			Type:    eventType,
			Message: message,
			Payload: payload,
		})
	}
}
