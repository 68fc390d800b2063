package calendar

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"` // 2006-01-02
	Type        string `json:"type" binding:"required,oneof=notice news reflection"`
}

type SuggestEventsRequest struct {
	Year   int    `json:"year" binding:"required"`
	Month  int    `json:"month" binding:"required,min=1,max=12"`
	Locale string `json:"locale"`
}
