package calendar

import (
	"context"
	"time"

	"kairos/internal/domain"
	"kairos/internal/modules/assist"
)

type EventRepository interface {
	Create(ctx context.Context, e *domain.CalendarEvent) error
	ListRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error)
	ListRecent(ctx context.Context, limit int) ([]domain.CalendarEvent, error)
}

// Suggester drafts events via the generative text boundary; it never
// returns an error, only a possibly-empty list.
type Suggester interface {
	SuggestEvents(ctx context.Context, monthContext, locale string) []assist.EventDraft
}
