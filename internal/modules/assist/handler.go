package assist

import (
	"net/http"

	"kairos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	assistGroup := protected.Group("/assist")
	{
		assistGroup.POST("/enhance", h.Enhance)
		assistGroup.POST("/translate", h.Translate)
		assistGroup.GET("/verse", h.DailyVerse)
	}
}

// Enhance never fails; an unavailable service echoes the input back.
func (h *Handler) Enhance(c *gin.Context) {
	var req EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out := h.client.Enhance(c.Request.Context(), req.Text, req.Category, req.Locale)
	response.Success(c, http.StatusOK, gin.H{"text": out})
}

func (h *Handler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out := h.client.Translate(c.Request.Context(), req.TargetID, req.Text, req.Locale)
	response.Success(c, http.StatusOK, gin.H{
		"target_id": req.TargetID,
		"text":      out,
	})
}

func (h *Handler) DailyVerse(c *gin.Context) {
	verse := h.client.DailyVerse(c.Request.Context(), c.Query("locale"))
	response.Success(c, http.StatusOK, gin.H{"verse": verse})
}
