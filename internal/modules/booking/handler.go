package booking

import (
	"errors"
	"net/http"
	"strconv"

	"venuehub/internal/domain"
	"venuehub/internal/engine"
	"venuehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only endpoints that need no token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/spaces/:id/availability", h.GetAvailability)
	rg.POST("/bookings/quote", h.Quote)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/my", h.GetMyBookings)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	spaceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid space ID")
		return
	}

	days := 0
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}

	resp, err := h.service.GetAvailability(c.Request.Context(), spaceID, c.Query("from"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	quote, err := h.service.QuotePricing(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.ClientID = c.GetInt64("user_id")

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	clientID := c.GetInt64("user_id")

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	bookings, err := h.service.GetMyBookings(c.Request.Context(), clientID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be approved or rejected")
		return
	}

	b, err := h.service.Decide(
		c.Request.Context(),
		bookingID,
		c.GetInt64("user_id"),
		c.GetString("role"),
		domain.BookingStatus(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": gin.H{
		"id":         b.ID,
		"request_id": b.RequestID,
		"status":     b.Status,
	}})
}

func respondError(c *gin.Context, err error) {
	var conflict *engine.ConflictError

	switch {
	case errors.Is(err, engine.ErrInvalidDateFormat):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_FORMAT", "Dates must be YYYY-MM-DD, times HH:MM")
	case errors.Is(err, engine.ErrInvalidRange):
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "Slot must span a whole number of hours, at least one")
	case errors.Is(err, engine.ErrSelfOverlap):
		response.Error(c, http.StatusBadRequest, "SELF_OVERLAP", "Requested slots overlap each other")
	case errors.Is(err, engine.ErrGuestCountOutOfRange):
		response.Error(c, http.StatusBadRequest, "GUEST_COUNT_OUT_OF_RANGE", "Guest count exceeds the space limit")
	case errors.Is(err, engine.ErrSlotUnavailable):
		if errors.As(err, &conflict) {
			response.ErrorWithDetails(c, http.StatusConflict, "SLOT_UNAVAILABLE", "Selected slot is not available", gin.H{
				"date":  conflict.Slot.Day.String(),
				"start": engine.FormatClock(conflict.Slot.Start),
				"end":   engine.FormatClock(conflict.Slot.End),
			})
		} else {
			response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "Selected slot is not available")
		}
	case errors.Is(err, ErrEmptyRequest):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "At least one slot is required")
	case errors.Is(err, ErrOverbooking):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Space is no longer available for the selected time")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS", "Booking cannot move to the requested status")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't manage this booking")
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or space not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
