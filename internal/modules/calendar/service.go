package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kairos/internal/domain"
)

type Service struct {
	events    EventRepository
	suggester Suggester
}

func NewService(events EventRepository, suggester Suggester) *Service {
	return &Service{
		events:    events,
		suggester: suggester,
	}
}

func (s *Service) Create(ctx context.Context, authorID int64, req CreateEventRequest) (*domain.CalendarEvent, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	eventType := domain.EventType(req.Type)
	if !domain.ValidEventType(eventType) {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrValidation, req.Type)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	event := &domain.CalendarEvent{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		Type:        eventType,
		AuthorID:    authorID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListMonth returns all events falling inside the given month.
func (s *Service) ListMonth(ctx context.Context, year int, month time.Month) ([]domain.CalendarEvent, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.events.ListRange(ctx, from, to)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.CalendarEvent, error) {
	return s.events.ListRecent(ctx, limit)
}

// MonthGrid buckets the month's events into the 6x7 display grid.
func (s *Service) MonthGrid(ctx context.Context, year int, month time.Month, today time.Time) ([]DayData, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Fetch exactly the 42 rendered days, including the leading and
	// trailing padding of adjacent months.
	start := first.AddDate(0, 0, -int(first.Weekday()))
	events, err := s.events.ListRange(ctx, start, start.AddDate(0, 0, gridCells))
	if err != nil {
		return nil, err
	}
	return BuildMonthGrid(year, month, today, events), nil
}

// SuggestEvents drafts events for the month through the text service
// and persists accepted drafts as news items. A failing or unconfigured
// service yields zero drafts, never an error.
func (s *Service) SuggestEvents(ctx context.Context, authorID int64, req SuggestEventsRequest) ([]domain.CalendarEvent, error) {
	month := time.Month(req.Month)
	monthContext := fmt.Sprintf("%s %d", month.String(), req.Year)

	drafts := s.suggester.SuggestEvents(ctx, monthContext, req.Locale)

	created := make([]domain.CalendarEvent, 0, len(drafts))
	for i, d := range drafts {
		day := 10 + i
		if last := daysIn(req.Year, month); day > last {
			day = last
		}
		event := &domain.CalendarEvent{
			Title:       d.Title,
			Description: d.Description,
			Date:        time.Date(req.Year, month, day, 0, 0, 0, 0, time.UTC),
			Type:        domain.EventNews,
			AuthorID:    authorID,
		}
		if err := s.events.Create(ctx, event); err != nil {
			return nil, err
		}
		created = append(created, *event)
	}
	return created, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
