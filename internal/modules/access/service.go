package access

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"kairos/internal/domain"
	validation "kairos/internal/pkg/validator"

	"gorm.io/gorm"
)

const (
	ChannelEmail = "email"
	ChannelPhone = "phone"
)

// Service is the access control and moderation engine. It owns every
// roster mutation: login resolution, approval decisions, promotion
// requests and profile updates. All state lives in the injected
// repository; the service itself is stateless.
type Service struct {
	users  UserRepository
	jwt    TokenIssuer
	notifs Notifier
}

func NewService(users UserRepository, jwt TokenIssuer, notifs Notifier) *Service {
	return &Service{
		users:  users,
		jwt:    jwt,
		notifs: notifs,
	}
}

// LoginResult reports the outcome of ResolveLogin. Pending means a new
// email registration was recorded and no session started; otherwise
// User/Token describe the started session.
type LoginResult struct {
	User    *domain.User
	Token   string
	Pending bool
}

// ResolveLogin resolves an identifier on the given channel.
//
// Phone is the low-friction guest path: unknown numbers are provisioned
// as approved viewers immediately. Email is the moderated path: unknown
// addresses become pending accounts and a moderation notification is
// emitted. Blocked identities never get a session on either channel.
func (s *Service) ResolveLogin(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if fields := validation.Validate(req); len(fields) > 0 {
		return nil, fmt.Errorf("%w: invalid login request", ErrValidation)
	}

	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrValidation)
	}

	switch req.Channel {
	case ChannelPhone:
		return s.resolvePhoneLogin(ctx, identifier)
	case ChannelEmail:
		return s.resolveEmailLogin(ctx, identifier, req.Name, req.ContactPhone)
	default:
		return nil, fmt.Errorf("%w: unknown channel %q", ErrValidation, req.Channel)
	}
}

func (s *Service) resolvePhoneLogin(ctx context.Context, phone string) (*LoginResult, error) {
	digits := PhoneDigits(phone)
	if digits == "" {
		return nil, fmt.Errorf("%w: phone number has no digits", ErrValidation)
	}

	user, err := s.users.GetByPhoneDigits(ctx, digits)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// Guest flow: provision an approved viewer immediately.
		user = &domain.User{
			Name:        guestName(digits),
			Phone:       phone,
			PhoneDigits: digits,
			AvatarURL:   avatarURL(digits),
			Role:        domain.RoleViewer,
			Status:      domain.StatusApproved,
			LoginCount:  1,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		return s.startSession(user)
	}

	if user.Status == domain.StatusBlocked {
		return nil, ErrAccessDenied
	}

	user.LoginCount++
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.startSession(user)
}

func (s *Service) resolveEmailLogin(ctx context.Context, email, name, contactPhone string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: malformed email", ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// New registration: pending editor account, no session. Email
		// logins are the contributor path; the account stays gated
		// until a moderator approves it.
		if name = strings.TrimSpace(name); name == "" {
			name = email[:strings.Index(email, "@")]
		}
		user = &domain.User{
			Name:        name,
			Email:       email,
			Phone:       strings.TrimSpace(contactPhone),
			PhoneDigits: PhoneDigits(contactPhone),
			AvatarURL:   avatarURL(email),
			Role:        domain.RoleEditor,
			Status:      domain.StatusPending,
			LoginCount:  0,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		if s.notifs != nil {
			s.notifs.UserRegistered(ctx, user)
		}
		return &LoginResult{User: user, Pending: true}, nil
	}

	switch user.Status {
	case domain.StatusApproved:
		user.LoginCount++
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
		return s.startSession(user)
	case domain.StatusPending:
		return nil, ErrPendingApproval
	default:
		return nil, ErrAccessDenied
	}
}

func (s *Service) startSession(user *domain.User) (*LoginResult, error) {
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token}, nil
}

// ApproveUser moves the target to approved with the assigned role and
// clears any promotion request. Idempotent: re-approving yields the
// same final state.
func (s *Service) ApproveUser(ctx context.Context, userID int64, role domain.UserRole) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Status = domain.StatusApproved
	user.Role = role
	user.RequestedRole = nil
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RejectUser blocks the target. Rejection blocks rather than deletes so
// the record stays on file; a blocked identity cannot re-register. The
// superadmin account can never be blocked.
func (s *Service) RejectUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user.IsSuperAdmin {
		return nil, fmt.Errorf("%w: cannot block the superadmin account", ErrValidation)
	}

	user.Status = domain.StatusBlocked
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RequestPromotion records that the user asks to be promoted. Role and
// status stay untouched until a moderator decides.
func (s *Service) RequestPromotion(ctx context.Context, userID int64, desired domain.UserRole) (*domain.User, error) {
	if !domain.ValidRole(desired) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, desired)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user.Role == domain.RoleAdmin {
		return nil, fmt.Errorf("%w: already admin", ErrValidation)
	}
	if domain.RoleRank(desired) <= domain.RoleRank(user.Role) {
		return nil, fmt.Errorf("%w: requested role is not a promotion", ErrValidation)
	}

	user.RequestedRole = &desired
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.PromotionRequested(ctx, user)
	}
	return user, nil
}

// UpdateProfile merges allow-listed profile fields. Role, status,
// requested role and login count are moderation-owned and cannot be
// reached through this path.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: malformed email", ErrValidation)
		}
		if other, err := s.users.GetByEmail(ctx, email); err == nil && other.ID != user.ID {
			return nil, fmt.Errorf("%w: email already in use", ErrValidation)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = email
	}
	if req.Phone != nil {
		digits := PhoneDigits(*req.Phone)
		if digits == "" {
			return nil, fmt.Errorf("%w: phone number has no digits", ErrValidation)
		}
		if other, err := s.users.GetByPhoneDigits(ctx, digits); err == nil && other.ID != user.ID {
			return nil, fmt.Errorf("%w: phone already in use", ErrValidation)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Phone = strings.TrimSpace(*req.Phone)
		user.PhoneDigits = digits
	}
	if req.Age != nil {
		user.Age = strings.TrimSpace(*req.Age)
	}
	if req.City != nil {
		user.City = strings.TrimSpace(*req.City)
	}
	if req.IsGCMember != nil {
		user.IsGCMember = *req.IsGCMember
	}
	if req.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentUser re-reads the roster record, so moderation changes made
// after token issue are always visible to the session.
func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// PhoneDigits strips every non-digit rune, the shared normalization for
// the phone identity key.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func guestName(digits string) string {
	suffix := digits
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return "Guest " + suffix
}

func avatarURL(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/100/100"
}
