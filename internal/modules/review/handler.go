package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/response"
	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/properties/:id/reviews", h.ListByProperty)

	g := protected.Group("/reviews")
	{
		g.POST("", h.Create)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) ListByProperty(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || propertyID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	list, err := h.service.ListByProperty(c.Request.Context(), propertyID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": list})
}

func (h *Handler) Create(c *gin.Context) {
	reviewerID := c.GetInt64("user_id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid review data", details)
		return
	}

	rev, err := h.service.Create(c.Request.Context(), reviewerID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotYourBooking), errors.Is(err, ErrWrongProperty):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking does not match reviewer and property")
		case errors.Is(err, ErrBookingNotStayed):
			response.Error(c, http.StatusConflict, "BOOKING_NOT_CONFIRMED", "Only confirmed bookings can be reviewed")
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", "This booking already has a review")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create review")
		}
		return
	}
	response.Success(c, http.StatusCreated, rev)
}

func (h *Handler) Update(c *gin.Context) {
	reviewerID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid review data", details)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, reviewerID, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) Delete(c *gin.Context) {
	reviewerID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, reviewerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
