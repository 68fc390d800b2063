package prayer

import (
	"context"

	"kairos/internal/domain"
)

type PrayerRepository interface {
	Create(ctx context.Context, p *domain.PrayerRequest) error
}

type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Notifier interface {
	PrayerReceived(ctx context.Context, p *domain.PrayerRequest, authorName string)
}
