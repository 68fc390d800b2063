package domain

import "time"

type EventType string

const (
	EventNotice     EventType = "notice"
	EventNews       EventType = "news"
	EventReflection EventType = "reflection"
)

func ValidEventType(t EventType) bool {
	switch t {
	case EventNotice, EventNews, EventReflection:
		return true
	}
	return false
}

// CalendarEvent is immutable after creation; there is no edit or
// state-transition path for events.
type CalendarEvent struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description" gorm:"column:description"`
	Date        time.Time `json:"date" gorm:"column:date;index"`
	Type        EventType `json:"type" gorm:"column:type"`
	AuthorID    int64     `json:"author_id" gorm:"column:author_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (CalendarEvent) TableName() string { return "calendar_events" }
