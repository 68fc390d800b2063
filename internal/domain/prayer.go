package domain

import "time"

type ContactMethod string

const (
	ContactSMS       ContactMethod = "sms"
	ContactShortMail ContactMethod = "short_mail"
	ContactEmail     ContactMethod = "email"
)

func ValidContactMethod(m ContactMethod) bool {
	switch m {
	case ContactSMS, ContactShortMail, ContactEmail:
		return true
	}
	return false
}

// PrayerRequest is append-only: it is never edited after creation.
// ContactMethod and ContactInfo may only be set when ContactAllowed is
// true.
type PrayerRequest struct {
	ID             int64         `json:"id" gorm:"column:id;primaryKey"`
	Content        string        `json:"content" gorm:"column:content"`
	AuthorID       int64         `json:"author_id" gorm:"column:author_id"`
	IsAnonymous    bool          `json:"is_anonymous" gorm:"column:is_anonymous"`
	ContactAllowed bool          `json:"contact_allowed" gorm:"column:contact_allowed"`
	ContactMethod  ContactMethod `json:"contact_method,omitempty" gorm:"column:contact_method"`
	ContactInfo    string        `json:"contact_info,omitempty" gorm:"column:contact_info"`
	CreatedAt      time.Time     `json:"created_at" gorm:"column:created_at"`
}

func (PrayerRequest) TableName() string { return "prayer_requests" }
