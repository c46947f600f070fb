package handlers

import (
	"errors"
	"net/http"

	"meetly/services/booking"
	"meetly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking write path and the organizer's booking list.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler returns all non-deleted bookings in ascending start order.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

// CreateBookingHandler books a slot for an invitee.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking created", "data": created})
}

// RescheduleBookingHandler moves an existing booking to a new interval,
// preserving its identity.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	id := c.Param("id")
	var req booking.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	updated, err := h.Service.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking rescheduled", "data": updated})
}

// DeleteBookingHandler soft-deletes a booking.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// respondBookingError maps the booking error taxonomy onto HTTP statuses:
// validation 400, conflict 409, not-found 404, storage 500.
func respondBookingError(c *gin.Context, err error) {
	var (
		vErr *booking.ValidationError
		cErr *booking.SlotConflictError
		nErr *booking.NotFoundError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.As(err, &cErr):
		c.JSON(http.StatusConflict, gin.H{"error": "Slot already booked"})
	case errors.As(err, &nErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nErr.Error()})
	default:
		utils.GetLogger().Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
