package moderation

import (
	"errors"
	"net/http"
	"strconv"

	"kairos/internal/domain"
	"kairos/internal/modules/access"
	"kairos/internal/notify"
	"kairos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	decider Decider
	hub     *notify.Hub
}

func NewHandler(service *Service, decider Decider, hub *notify.Hub) *Handler {
	return &Handler{
		service: service,
		decider: decider,
		hub:     hub,
	}
}

// RegisterRoutes wires the moderator panel. The group is expected to be
// wrapped in AdminOnly.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/users/pending", h.GetPendingAccounts)
	admin.GET("/promotions", h.GetPromotionRequests)
	admin.POST("/users/:id/approve", h.ApproveUser)
	admin.POST("/users/:id/reject", h.RejectUser)

	admin.GET("/stats", h.GetStats)
	admin.GET("/leaderboard", h.GetLeaderboard)
	admin.GET("/prayers", h.GetPrayerInbox)

	admin.GET("/ws", h.ModerationFeed)
}

func (h *Handler) GetPendingAccounts(c *gin.Context) {
	users, err := h.service.PendingAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"pending_users": users,
		"count":         len(users),
	})
}

func (h *Handler) GetPromotionRequests(c *gin.Context) {
	users, err := h.service.PromotionRequests(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"promotion_requests": users,
		"count":              len(users),
	})
}

// ApproveUser approves a pending account or an open promotion request,
// assigning the given role. Safe to repeat.
func (h *Handler) ApproveUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req ApproveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.decider.ApproveUser(c.Request.Context(), userID, domain.UserRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, access.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "APPROVE_FAILED", "Could not approve user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) RejectUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.decider.RejectUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, access.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REJECT_FAILED", "Could not reject user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit := parseIntDefault(c.Query("limit"), 20)

	users, err := h.service.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaderboard": users})
}

func (h *Handler) GetPrayerInbox(c *gin.Context) {
	limit := parseIntDefault(c.Query("limit"), 50)

	prayers, err := h.service.PrayerInbox(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"prayer_requests": prayers,
		"count":           len(prayers),
	})
}

// ModerationFeed upgrades to a websocket and streams moderation events
// (new registrations, prayer requests, promotion requests) to the
// connected admin until the socket closes.
func (h *Handler) ModerationFeed(c *gin.Context) {
	if h.hub == nil {
		response.Error(c, http.StatusServiceUnavailable, "FEED_DISABLED", "Moderation feed is not enabled")
		return
	}

	userID := c.GetInt64("user_id")
	conn, err := notify.Upgrade(c.Writer, c.Request)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}

	h.hub.Register(userID, conn)

	// Drain control frames; Unregister on any read error/close.
	go func() {
		defer h.hub.Unregister(userID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, false
	}
	return id, true
}

func parseIntDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
