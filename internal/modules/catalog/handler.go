package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RamadhaniRO/voya-travel-platform/internal/middleware"
	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/response"
	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/validator"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/destinations", h.ListDestinations)
	public.GET("/destinations/:id", h.GetDestination)
	public.GET("/properties", h.SearchProperties)
	public.GET("/properties/:id", h.GetProperty)

	protected.POST("/destinations", middleware.AdminOnly(), h.CreateDestination)

	host := protected.Group("", middleware.HostOnly())
	{
		host.GET("/host/properties", h.HostProperties)
		host.POST("/properties", h.CreateProperty)
		host.PATCH("/properties/:id", h.UpdateProperty)
		host.DELETE("/properties/:id", h.DeleteProperty)
	}
}

func (h *Handler) ListDestinations(c *gin.Context) {
	list, err := h.service.ListDestinations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get destinations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destinations": list})
}

func (h *Handler) GetDestination(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid destination ID")
		return
	}

	d, err := h.service.GetDestination(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "Destination not found")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) CreateDestination(c *gin.Context) {
	var req CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid destination data", details)
		return
	}

	d, err := h.service.CreateDestination(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create destination")
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) SearchProperties(c *gin.Context) {
	f := repository.PropertyFilter{
		DestinationName: c.Query("destination"),
		PropertyType:    c.Query("type"),
	}
	if raw := c.Query("destination_id"); raw != "" {
		f.DestinationID, _ = strconv.ParseInt(raw, 10, 64)
	}
	if raw := c.Query("guests"); raw != "" {
		f.MinGuests, _ = strconv.Atoi(raw)
	}
	if raw := c.Query("price_min"); raw != "" {
		f.PriceMin, _ = strconv.ParseFloat(raw, 64)
	}
	if raw := c.Query("price_max"); raw != "" {
		f.PriceMax, _ = strconv.ParseFloat(raw, 64)
	}

	list, err := h.service.SearchProperties(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to search properties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": list})
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	p, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "Property not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) HostProperties(c *gin.Context) {
	hostID := c.GetInt64("user_id")
	list, err := h.service.GetHostProperties(c.Request.Context(), hostID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get properties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": list})
}

func (h *Handler) CreateProperty(c *gin.Context) {
	hostID := c.GetInt64("user_id")

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid property data", details)
		return
	}

	p, err := h.service.CreateProperty(c.Request.Context(), hostID, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusBadRequest, "UNKNOWN_DESTINATION", "Destination does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create property")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	hostID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid property data", details)
		return
	}

	p, err := h.service.UpdateProperty(c.Request.Context(), id, hostID, req)
	if err != nil {
		h.renderError(c, err, "Property not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	hostID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), id, hostID); err != nil {
		h.renderError(c, err, "Property not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) renderError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", notFoundMsg)
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not the owner of this listing")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
