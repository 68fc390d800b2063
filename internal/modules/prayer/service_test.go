package prayer

import (
	"context"
	"testing"

	"kairos/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrayerRepo struct {
	created []*domain.PrayerRequest
}

func (f *fakePrayerRepo) Create(ctx context.Context, p *domain.PrayerRequest) error {
	p.ID = int64(len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}

type fakeUserLookup struct {
	user *domain.User
}

func (f *fakeUserLookup) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.user, nil
}

type fakeNotifier struct {
	received []string
}

func (f *fakeNotifier) PrayerReceived(ctx context.Context, p *domain.PrayerRequest, authorName string) {
	f.received = append(f.received, authorName)
}

func TestCreate_NotifiesOnce(t *testing.T) {
	repo := &fakePrayerRepo{}
	notifs := &fakeNotifier{}
	svc := NewService(repo, &fakeUserLookup{user: &domain.User{ID: 7, Name: "Ana"}}, notifs)

	p, err := svc.Create(context.Background(), 7, CreatePrayerRequest{Content: "Pray for my family"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), p.AuthorID)
	assert.Len(t, repo.created, 1)
	require.Len(t, notifs.received, 1)
	assert.Equal(t, "Ana", notifs.received[0])
}

func TestCreate_ContactConsent(t *testing.T) {
	repo := &fakePrayerRepo{}
	notifs := &fakeNotifier{}
	svc := NewService(repo, &fakeUserLookup{user: &domain.User{ID: 1, Name: "Ana"}}, notifs)
	ctx := context.Background()

	// Contact details without consent are rejected.
	_, err := svc.Create(ctx, 1, CreatePrayerRequest{
		Content:       "Please call me",
		ContactMethod: "sms",
		ContactInfo:   "090-1234-5678",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// Consent requires a known method and contact info.
	_, err = svc.Create(ctx, 1, CreatePrayerRequest{
		Content:        "Please call me",
		ContactAllowed: true,
		ContactMethod:  "fax",
		ContactInfo:    "090-1234-5678",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, 1, CreatePrayerRequest{
		Content:        "Please call me",
		ContactAllowed: true,
		ContactMethod:  "sms",
	})
	assert.ErrorIs(t, err, ErrValidation)

	p, err := svc.Create(ctx, 1, CreatePrayerRequest{
		Content:        "Please call me",
		ContactAllowed: true,
		ContactMethod:  "sms",
		ContactInfo:    "090-1234-5678",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactSMS, p.ContactMethod)

	// Nothing was stored for the rejected attempts.
	assert.Len(t, repo.created, 1)
	assert.Len(t, notifs.received, 1)
}

func TestCreate_EmptyContent(t *testing.T) {
	svc := NewService(&fakePrayerRepo{}, &fakeUserLookup{user: &domain.User{ID: 1}}, &fakeNotifier{})

	_, err := svc.Create(context.Background(), 1, CreatePrayerRequest{Content: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}
