package assist

type EnhanceRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category" binding:"required,oneof=notice news reflection prayer"`
	Locale   string `json:"locale"`
}

type TranslateRequest struct {
	TargetID string `json:"target_id" binding:"required"`
	Text     string `json:"text" binding:"required"`
	Locale   string `json:"locale" binding:"required"`
}
