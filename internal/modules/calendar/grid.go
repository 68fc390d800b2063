package calendar

import (
	"time"

	"kairos/internal/domain"
)

// DayData is one cell of the month view.
type DayData struct {
	Date           time.Time              `json:"date"`
	IsCurrentMonth bool                   `json:"is_current_month"`
	IsToday        bool                   `json:"is_today"`
	Events         []domain.CalendarEvent `json:"events"`
}

const gridCells = 42 // 6 weeks of 7 days

// BuildMonthGrid lays the month out as a fixed 6x7 grid starting on
// Sunday, padding with the adjacent months' days. Events are bucketed
// by calendar day.
func BuildMonthGrid(year int, month time.Month, today time.Time, events []domain.CalendarEvent) []DayData {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	byDay := make(map[string][]domain.CalendarEvent)
	for _, e := range events {
		key := e.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], e)
	}
	todayKey := today.Format("2006-01-02")

	grid := make([]DayData, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		grid = append(grid, DayData{
			Date:           day,
			IsCurrentMonth: day.Month() == month,
			IsToday:        key == todayKey,
			Events:         byDay[key],
		})
	}
	return grid
}
