package moderation

import (
	"context"

	"kairos/internal/domain"
)

// Service backs the moderator panel: pending queues, roster statistics
// and the login leaderboard. All figures are recomputed from the roster
// on every call; nothing is cached.
type Service struct {
	users   UserRepository
	prayers PrayerRepository
}

func NewService(users UserRepository, prayers PrayerRepository) *Service {
	return &Service{
		users:   users,
		prayers: prayers,
	}
}

// PendingAccounts lists new registrations awaiting a decision.
func (s *Service) PendingAccounts(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByStatus(ctx, domain.StatusPending)
}

// PromotionRequests lists users with an open promotion request, a
// separate queue from pending new accounts.
func (s *Service) PromotionRequests(ctx context.Context) ([]domain.User, error) {
	return s.users.ListPromotionRequests(ctx)
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	return s.users.ListByLogins(ctx, limit)
}

func (s *Service) PrayerInbox(ctx context.Context, limit int) ([]domain.PrayerRequest, error) {
	return s.prayers.List(ctx, limit)
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.users.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	promotions, err := s.users.CountPromotionRequests(ctx)
	if err != nil {
		return nil, err
	}

	logins, err := s.users.SumLogins(ctx)
	if err != nil {
		return nil, err
	}

	prayers, err := s.prayers.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalUsers:          totalUsers,
		PendingNewAccounts:  pending,
		PendingPromotions:   promotions,
		TotalLogins:         logins,
		TotalPrayerRequests: prayers,
	}, nil
}
