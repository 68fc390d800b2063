package prayer

import (
	"context"
	"fmt"
	"strings"

	"kairos/internal/domain"
)

type Service struct {
	prayers PrayerRepository
	users   UserLookup
	notifs  Notifier
}

func NewService(prayers PrayerRepository, users UserLookup, notifs Notifier) *Service {
	return &Service{
		prayers: prayers,
		users:   users,
		notifs:  notifs,
	}
}

// Create stores a prayer request and notifies the moderators. Contact
// details are only accepted when the author consented to be contacted.
func (s *Service) Create(ctx context.Context, authorID int64, req CreatePrayerRequest) (*domain.PrayerRequest, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	if !req.ContactAllowed && (req.ContactMethod != "" || req.ContactInfo != "") {
		return nil, fmt.Errorf("%w: contact details require contact consent", ErrValidation)
	}

	var method domain.ContactMethod
	if req.ContactAllowed {
		method = domain.ContactMethod(req.ContactMethod)
		if !domain.ValidContactMethod(method) {
			return nil, fmt.Errorf("%w: unknown contact method %q", ErrValidation, req.ContactMethod)
		}
		if strings.TrimSpace(req.ContactInfo) == "" {
			return nil, fmt.Errorf("%w: contact info is required when contact is allowed", ErrValidation)
		}
	}

	p := &domain.PrayerRequest{
		Content:        content,
		AuthorID:       authorID,
		IsAnonymous:    req.IsAnonymous,
		ContactAllowed: req.ContactAllowed,
		ContactMethod:  method,
		ContactInfo:    strings.TrimSpace(req.ContactInfo),
	}
	if err := s.prayers.Create(ctx, p); err != nil {
		return nil, err
	}

	authorName := "Unknown"
	if author, err := s.users.GetByID(ctx, authorID); err == nil {
		authorName = author.Name
	}
	s.notifs.PrayerReceived(ctx, p, authorName)

	return p, nil
}
