package prayer

import (
	"errors"
	"net/http"

	"kairos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires prayer submission for any approved session. The
// moderator inbox lives with the rest of the admin panel.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/prayers", h.CreatePrayer)
}

func (h *Handler) CreatePrayer(c *gin.Context) {
	var req CreatePrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	authorID := c.GetInt64("user_id")
	p, err := h.service.Create(c.Request.Context(), authorID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not submit prayer request")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"prayer_request": p})
}
