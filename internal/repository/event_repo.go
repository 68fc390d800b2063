package repository

import (
	"context"
	"time"

	"kairos/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.CalendarEvent, error) {
	var e domain.CalendarEvent
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListRange returns events with from <= date < to, oldest first.
func (r *EventRepository) ListRange(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC, created_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]domain.CalendarEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var events []domain.CalendarEvent
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
