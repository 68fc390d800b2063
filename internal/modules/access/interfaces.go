package access

import (
	"context"

	"kairos/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhoneDigits(ctx context.Context, digits string) (*domain.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Notifier receives best-effort moderation events; implementations must
// never fail the calling operation.
type Notifier interface {
	UserRegistered(ctx context.Context, u *domain.User)
	PromotionRequested(ctx context.Context, u *domain.User)
}
