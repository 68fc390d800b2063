package moderation

import (
	"context"

	"kairos/internal/domain"
)

type UserRepository interface {
	ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error)
	ListPromotionRequests(ctx context.Context) ([]domain.User, error)
	ListByLogins(ctx context.Context, limit int) ([]domain.User, error)
	CountByStatus(ctx context.Context, status domain.UserStatus) (int64, error)
	CountPromotionRequests(ctx context.Context) (int64, error)
	SumLogins(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type PrayerRepository interface {
	List(ctx context.Context, limit int) ([]domain.PrayerRequest, error)
	Count(ctx context.Context) (int64, error)
}

// Decider is the slice of the access engine that owns approval state
// transitions; moderation routes delegate instead of mutating the
// roster themselves.
type Decider interface {
	ApproveUser(ctx context.Context, userID int64, role domain.UserRole) (*domain.User, error)
	RejectUser(ctx context.Context, userID int64) (*domain.User, error)
}
