package repository

import (
	"context"

	"kairos/internal/domain"

	"gorm.io/gorm"
)

type PrayerRepository struct {
	db *gorm.DB
}

func NewPrayerRepository(db *gorm.DB) *PrayerRepository {
	return &PrayerRepository{db: db}
}

func (r *PrayerRepository) Create(ctx context.Context, p *domain.PrayerRequest) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// List returns prayer requests newest first.
func (r *PrayerRepository) List(ctx context.Context, limit int) ([]domain.PrayerRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var prayers []domain.PrayerRequest
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&prayers).Error; err != nil {
		return nil, err
	}
	return prayers, nil
}

func (r *PrayerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.PrayerRequest{}).Count(&n).Error
	return n, err
}
