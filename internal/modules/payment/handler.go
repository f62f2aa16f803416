package payment

import (
	"net/http"
	"strconv"

	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/payments/booking/:bookingID", h.ByBooking)
}

func (h *Handler) ByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	list, err := h.service.GetByBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": list})
}
