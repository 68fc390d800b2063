package calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"kairos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the event endpoints onto an authenticated group.
// Writes additionally pass through requireEditor.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, requireEditor gin.HandlerFunc) {
	eventGroup := protected.Group("/events")
	{
		eventGroup.GET("", h.ListMonth)
		eventGroup.GET("/grid", h.MonthGrid)
		eventGroup.GET("/recent", h.ListRecent)
		eventGroup.POST("", requireEditor, h.CreateEvent)
		eventGroup.POST("/suggest", requireEditor, h.SuggestEvents)
	}
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	authorID := c.GetInt64("user_id")
	event, err := h.service.Create(c.Request.Context(), authorID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not create event")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event": event})
}

func (h *Handler) ListMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	events, err := h.service.ListMonth(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

func (h *Handler) MonthGrid(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	grid, err := h.service.MonthGrid(c.Request.Context(), year, month, time.Now().UTC())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  grid,
	})
}

func (h *Handler) ListRecent(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"events": events})
}

// SuggestEvents asks the text service for draft events and persists any
// drafts it returns. An unavailable service returns an empty list.
func (h *Handler) SuggestEvents(c *gin.Context) {
	var req SuggestEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	authorID := c.GetInt64("user_id")
	events, err := h.service.SuggestEvents(c.Request.Context(), authorID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SUGGEST_FAILED", "Could not store suggested events")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	now := time.Now().UTC()

	year := now.Year()
	if raw := c.Query("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid year")
			return 0, 0, false
		}
		year = n
	}

	month := now.Month()
	if raw := c.Query("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 12 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid month")
			return 0, 0, false
		}
		month = time.Month(n)
	}

	return year, month, true
}
