package handlers

import (
	"net/http"

	"agendly/models"
	"agendly/services/attendant"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AttendantHandler exposes attendant management for the administrative UI.
type AttendantHandler struct {
	Service attendant.AttendantService
}

// NewAttendantHandler creates an AttendantHandler.
func NewAttendantHandler(service attendant.AttendantService) *AttendantHandler {
	return &AttendantHandler{Service: service}
}

// ListAttendantsHandler returns all attendants.
func (h *AttendantHandler) ListAttendantsHandler(c *gin.Context) {
	logger := getLogger(c)
	attendants, err := h.Service.List()
	if err != nil {
		logger.Error("Failed to retrieve attendants", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get attendants", "")
		return
	}
	if attendants == nil {
		attendants = []models.Attendant{}
	}
	c.JSON(http.StatusOK, gin.H{"attendants": attendants})
}

// GetAttendantByIDHandler returns details for a specific attendant.
func (h *AttendantHandler) GetAttendantByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	att, err := h.Service.GetByID(id)
	if err != nil {
		logger.Error("Attendant not found", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "attendant not found", id)
		return
	}
	c.JSON(http.StatusOK, att)
}

// CreateAttendantHandler creates a new attendant.
func (h *AttendantHandler) CreateAttendantHandler(c *gin.Context) {
	logger := getLogger(c)
	var att models.Attendant
	if err := c.ShouldBindJSON(&att); err != nil {
		logger.Error("Invalid attendant creation request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	created, err := h.Service.Create(&att)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create attendant", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAttendantHandler updates attendant information, including the weekly
// schedule and pauses.
func (h *AttendantHandler) UpdateAttendantHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var att models.Attendant
	if err := c.ShouldBindJSON(&att); err != nil {
		logger.Error("Invalid attendant update request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	att.ID = id // Ensure the ID is set.
	updated, err := h.Service.Update(&att)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update attendant", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAttendantHandler removes an attendant.
func (h *AttendantHandler) DeleteAttendantHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		logger.Error("Failed to delete attendant", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "attendant not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
