package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"meetly/services/availability"
	"meetly/utils"

	"github.com/gin-gonic/gin"
)

// SlotHandler serves the invitee-facing availability listing.
type SlotHandler struct {
	Service availability.AvailabilityService
}

func NewSlotHandler(svc availability.AvailabilityService) *SlotHandler {
	return &SlotHandler{Service: svc}
}

// GetAvailableSlotsHandler returns the bookable slots per day for the window
// given by the "start" and "end" query parameters.
func (h *SlotHandler) GetAvailableSlotsHandler(c *gin.Context) {
	start, err := parseTimeParam(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start parameter", "details": err.Error()})
		return
	}
	end, err := parseTimeParam(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end parameter", "details": err.Error()})
		return
	}

	days, err := h.Service.GetSlots(c.Request.Context(), start, end)
	if err != nil {
		var vErr *availability.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": days})
}

// parseTimeParam accepts RFC 3339 instants and bare calendar dates.
func parseTimeParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing value")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("expected RFC3339 instant or YYYY-MM-DD, got %q", s)
}
