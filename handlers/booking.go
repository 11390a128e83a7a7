package handlers

import (
	"errors"
	"net/http"

	"agendly/models"
	"agendly/services/booking"
	"agendly/services/distribution"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateAppointment books a slot. The attendant is chosen server-side; a full
// pool with no availability is a 409, not a server error.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	appointment, err := h.Service.CreateAppointment(req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// PreviewAttendant runs selection without booking, so the UI can show which
// attendant a slot would land on. The answer is advisory only.
func (h *BookingHandler) PreviewAttendant(c *gin.Context) {
	date := c.Query("date")
	timeOfDay := c.Query("time")
	apptType := c.Query("type")
	if date == "" || timeOfDay == "" || apptType == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "date, time and type are required")
		return
	}

	attendant, err := h.Service.PreviewAttendant(date, timeOfDay, apptType)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendant": attendant})
}

// ListAppointments returns the appointments for a date.
func (h *BookingHandler) ListAppointments(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "date is required")
		return
	}
	appointments, err := h.Service.ListByDate(date)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// CancelAppointment cancels a booked appointment, freeing its slot.
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.CancelAppointment(id); err != nil {
		h.Logger.Error("Failed to cancel appointment", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "appointment not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled})
}

// respondBookingError maps the business failures of the distribution and
// booking layers to HTTP outcomes. Both "nobody on duty" and "everyone busy"
// are 409s with distinct codes so the UI can phrase the message.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var distErr *distribution.DistributionError
	if errors.As(err, &distErr) {
		c.JSON(http.StatusConflict, gin.H{"error": distErr.Message, "code": distErr.Code})
		return
	}
	var bookErr *booking.BookingError
	if errors.As(err, &bookErr) {
		status := http.StatusBadRequest
		if bookErr == booking.ErrSlotTaken {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": bookErr.Message, "code": bookErr.Code})
		return
	}
	h.Logger.Error("Booking request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "booking failed", "an unexpected error occurred")
}
