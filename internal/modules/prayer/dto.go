package prayer

type CreatePrayerRequest struct {
	Content        string `json:"content" binding:"required"`
	IsAnonymous    bool   `json:"is_anonymous"`
	ContactAllowed bool   `json:"contact_allowed"`
	ContactMethod  string `json:"contact_method"`
	ContactInfo    string `json:"contact_info"`
}
