package repository

import (
	"context"
	"fmt"
	"testing"

	"kairos/internal/database"
	"kairos/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory database keeps each test isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestUserRepository_EmailIsNormalized(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{
		Name:   "Ana",
		Email:  "  Ana@Example.COM ",
		Role:   domain.RoleViewer,
		Status: domain.StatusApproved,
	}))

	u, err := repo.GetByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
}

func TestUserRepository_GetByPhoneDigits(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{
		Name:        "Guest 4567",
		Phone:       "090-123-4567",
		PhoneDigits: "0901234567",
		Role:        domain.RoleViewer,
		Status:      domain.StatusApproved,
	}))

	u, err := repo.GetByPhoneDigits(ctx, "0901234567")
	require.NoError(t, err)
	assert.Equal(t, "Guest 4567", u.Name)

	_, err = repo.GetByPhoneDigits(ctx, "0000000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdateClearsRequestedRole(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	requested := domain.RoleAdmin
	u := &domain.User{
		Name:          "Lucas",
		Email:         "lucas@example.com",
		Role:          domain.RoleEditor,
		Status:        domain.StatusApproved,
		RequestedRole: &requested,
	}
	require.NoError(t, repo.Create(ctx, u))

	count, err := repo.CountPromotionRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	u.RequestedRole = nil
	require.NoError(t, repo.Update(ctx, u))

	reloaded, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.RequestedRole)

	count, err = repo.CountPromotionRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUserRepository_StatsQueries(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	requested := domain.RoleEditor
	seed := []*domain.User{
		{Name: "A", Email: "a@x.com", Role: domain.RoleAdmin, Status: domain.StatusApproved, LoginCount: 12},
		{Name: "B", Email: "b@x.com", Role: domain.RoleEditor, Status: domain.StatusPending},
		{Name: "C", Email: "c@x.com", Role: domain.RoleViewer, Status: domain.StatusApproved, LoginCount: 3, RequestedRole: &requested},
	}
	for _, u := range seed {
		require.NoError(t, repo.Create(ctx, u))
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	pending, err := repo.CountByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	logins, err := repo.SumLogins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), logins)

	board, err := repo.ListByLogins(ctx, 2)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "A", board[0].Name)
	assert.Equal(t, "C", board[1].Name)
}
