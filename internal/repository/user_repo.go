package repository

import (
	"context"
	"strings"

	"kairos/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	// Save writes all columns so cleared fields (requested_role = NULL)
	// reach the store.
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// GetByPhoneDigits looks up by the normalized phone key, so identifiers
// differing only in punctuation resolve to the same record.
func (r *UserRepository) GetByPhoneDigits(ctx context.Context, digits string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("phone_digits = ?", digits).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) ListPromotionRequests(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).
		Where("requested_role IS NOT NULL AND requested_role <> ''").
		Order("updated_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) CountByStatus(ctx context.Context, status domain.UserStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *UserRepository) CountPromotionRequests(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("requested_role IS NOT NULL AND requested_role <> ''").
		Count(&n).Error
	return n, err
}

func (r *UserRepository) SumLogins(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Select("COALESCE(SUM(login_count), 0)").
		Scan(&total).Error
	return total, err
}

// ListByLogins returns the roster ordered by login_count descending.
func (r *UserRepository) ListByLogins(ctx context.Context, limit int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var users []domain.User
	if err := r.db.WithContext(ctx).
		Order("login_count DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}
