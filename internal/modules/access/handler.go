package access

import (
	"errors"
	"net/http"

	"kairos/internal/domain"
	"kairos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", h.Logout)

	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.PUT("/me", h.UpdateProfile)
		userGroup.POST("/me/promotion", h.RequestPromotion)
	}
}

// Login resolves an email or phone identifier. A phone identifier
// always yields a session (unless blocked); an unknown email yields a
// 202 pending registration instead of a session.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.ResolveLogin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrAccessDenied):
			response.Error(c, http.StatusForbidden, "ACCESS_DENIED", "Access blocked by a moderator")
		case errors.Is(err, ErrPendingApproval):
			response.Error(c, http.StatusForbidden, "PENDING_APPROVAL", "Your account awaits moderator approval")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to resolve login")
		}
		return
	}

	if result.Pending {
		response.Success(c, http.StatusAccepted, gin.H{
			"status":  "request_submitted",
			"message": "Access request submitted. A moderator has been notified.",
			"user":    publicUser(result.User),
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  publicUser(result.User),
		"token": result.Token,
	})
}

// Logout acknowledges the client dropping its token. Sessions are
// stateless, so there is nothing to revoke server-side; the client
// clears any open moderation or profile view state with the token.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// RequestPromotion lets the authenticated user ask for a higher role.
// Only the user themself can file the request; moderators decide later.
func (h *Handler) RequestPromotion(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req RequestPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.RequestPromotion(c.Request.Context(), userID, domain.UserRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "REQUEST_FAILED", "Could not submit promotion request")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Promotion request sent for moderator review",
		"user":    user,
	})
}

func publicUser(u *domain.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"phone":       u.Phone,
		"avatar_url":  u.AvatarURL,
		"role":        u.Role,
		"status":      u.Status,
		"login_count": u.LoginCount,
	}
}
