package domain

import "time"

type UserRole string

const (
	RoleViewer UserRole = "viewer"
	RoleEditor UserRole = "editor"
	RoleAdmin  UserRole = "admin"
)

// RoleRank orders roles for capability checks: admin > editor > viewer.
func RoleRank(r UserRole) int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleEditor:
		return 2
	case RoleViewer:
		return 1
	default:
		return 0
	}
}

func ValidRole(r UserRole) bool {
	return RoleRank(r) > 0
}

type UserStatus string

const (
	StatusPending  UserStatus = "pending"
	StatusApproved UserStatus = "approved"
	StatusBlocked  UserStatus = "blocked"
)

// User is a roster entry. Identity keys are Email (lower-cased) and
// PhoneDigits (phone with all non-digit characters stripped); at least
// one of the two is always set.
type User struct {
	ID            int64      `json:"id" gorm:"column:id;primaryKey"`
	Name          string     `json:"name" gorm:"column:name"`
	Email         string     `json:"email,omitempty" gorm:"column:email"`
	Phone         string     `json:"phone,omitempty" gorm:"column:phone"`
	PhoneDigits   string     `json:"-" gorm:"column:phone_digits;index"`
	AvatarURL     string     `json:"avatar_url,omitempty" gorm:"column:avatar_url"`
	Role          UserRole   `json:"role" gorm:"column:role"`
	Status        UserStatus `json:"status" gorm:"column:status"`
	RequestedRole *UserRole  `json:"requested_role,omitempty" gorm:"column:requested_role"`
	LoginCount    int64      `json:"login_count" gorm:"column:login_count"`
	Age           string     `json:"age,omitempty" gorm:"column:age"`
	City          string     `json:"city,omitempty" gorm:"column:city"`
	IsGCMember    bool       `json:"is_gc_member" gorm:"column:is_gc_member"`
	IsSuperAdmin  bool       `json:"is_super_admin" gorm:"column:is_super_admin"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }

// CanEdit reports whether the user may create calendar events.
func (u *User) CanEdit() bool {
	return RoleRank(u.Role) >= RoleRank(RoleEditor)
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
