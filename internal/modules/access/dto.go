package access

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Channel    string `json:"channel" binding:"required,oneof=email phone"`

	// Optional registration sub-flow fields, only meaningful on the
	// email channel when a new pending account is created.
	Name         string `json:"name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Age        *string `json:"age,omitempty"`
	City       *string `json:"city,omitempty"`
	IsGCMember *bool   `json:"is_gc_member,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

type RequestPromotionRequest struct {
	Role string `json:"role" binding:"required"`
}
