package analytics

import (
	"net/http"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/middleware"
	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/response"
	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const rangeLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/analytics/events", h.Track)

	admin := protected.Group("/analytics", middleware.AdminOnly())
	{
		admin.GET("/report", h.Report)
		admin.GET("/metrics", h.Metrics)
	}
}

// Track accepts events from signed-in and anonymous visitors alike.
func (h *Handler) Track(c *gin.Context) {
	var req TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid event data", details)
		return
	}

	var userID *int64
	if id := c.GetInt64("user_id"); id != 0 {
		userID = &id
	}

	sessionID, err := h.service.Track(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "TRACK_FAILED", "Failed to record event")
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"session_id": sessionID})
}

func (h *Handler) Report(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	report, err := h.service.BuildReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to build report")
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) Metrics(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	metrics, err := h.service.BuildMetrics(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "METRICS_FAILED", "Failed to build metrics")
		return
	}
	response.Success(c, http.StatusOK, metrics)
}

// parseRange reads from/to query params, defaulting to the last 30 days.
func (h *Handler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(rangeLayout, raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "from must be YYYY-MM-DD")
			return from, to, false
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(rangeLayout, raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "to must be YYYY-MM-DD")
			return from, to, false
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "to must not be before from")
		return from, to, false
	}
	return from, to, true
}
