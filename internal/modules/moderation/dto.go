package moderation

type ApproveUserRequest struct {
	Role string `json:"role" binding:"required,oneof=viewer editor admin"`
}

type StatsResponse struct {
	TotalUsers          int64 `json:"total_users"`
	PendingNewAccounts  int64 `json:"pending_new_accounts"`
	PendingPromotions   int64 `json:"pending_promotions"`
	TotalLogins         int64 `json:"total_logins"`
	TotalPrayerRequests int64 `json:"total_prayer_requests"`
}
