package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Handler struct {
	controller *Controller
	service    *Service
}

func NewHandler(controller *Controller, service *Service) *Handler {
	return &Handler{controller: controller, service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/bookings")
	{
		g.POST("", h.Submit)
		g.GET("/my", h.MyBookings)
		g.GET("/:id", h.GetByID)
		g.POST("/:id/cancel", h.Cancel)
		g.GET("/property/:propertyID", h.ByProperty)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var body submitBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	checkIn, err := time.Parse(dateLayout, body.CheckIn)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "check_in_date must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, body.CheckOut)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "check_out_date must be YYYY-MM-DD")
		return
	}

	req := SubmitBookingRequest{
		PropertyID:      body.PropertyID,
		TravelerID:      userID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          body.Guests,
		FirstName:       body.FirstName,
		LastName:        body.LastName,
		Email:           body.Email,
		Phone:           body.Phone,
		SpecialRequests: body.SpecialRequests,
		Currency:        body.Currency,
		PaymentMethod:   body.PaymentMethod,
	}

	result := h.controller.Submit(c.Request.Context(), req)

	switch result.State {
	case StateCompleted:
		response.Success(c, http.StatusCreated, gin.H{
			"booking_id":  result.BookingID,
			"status":      "confirmed",
			"nights":      result.Nights,
			"total_price": result.TotalPrice,
		})
	case StateRejected:
		if errors.Is(result.Err, ErrSubmitInFlight) {
			response.Error(c, http.StatusConflict, "SUBMISSION_IN_FLIGHT", "A booking submission is already in progress")
			return
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED",
			"Booking request is invalid", toValidationDetails(result.ValidationErrors))
	case StatePartiallyFailed:
		response.ErrorWithDetails(c, http.StatusBadGateway, "PAYMENT_FAILED",
			"Booking created but payment failed. Please contact support.",
			gin.H{"booking_id": result.BookingID})
	default:
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create booking")
	}
}

func (h *Handler) MyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	list, err := h.service.GetMyBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) GetByID(c *gin.Context) {
	userID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var body cancelBookingBody
	_ = c.ShouldBindJSON(&body)

	b, err := h.service.Cancel(c.Request.Context(), id, userID, body.Reason)
	if err != nil {
		if errors.Is(err, ErrAlreadyCancelled) {
			response.Error(c, http.StatusConflict, "ALREADY_CANCELLED", "Booking is already cancelled")
			return
		}
		h.renderServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ByProperty(c *gin.Context) {
	userID := c.GetInt64("user_id")
	propertyID, err := strconv.ParseInt(c.Param("propertyID"), 10, 64)
	if err != nil || propertyID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	list, err := h.service.GetByProperty(c.Request.Context(), propertyID, userID)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) renderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed to access this booking")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
