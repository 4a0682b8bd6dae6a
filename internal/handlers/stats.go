package handlers

import (
	"time"

	"vaxtrack-server/internal/models"
	"vaxtrack-server/internal/schedule"
	"vaxtrack-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler handles dashboard statistics requests.
type StatsHandler struct {
	DB *gorm.DB
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{DB: db}
}

// GetClinicStats handles computing clinic-wide coverage counters. The
// numbers are derived from the full baby collection on every call so
// they always agree with the underlying dose records.
func (h *StatsHandler) GetClinicStats(c *gin.Context) {
	var babies []models.Baby
	if err := h.DB.Preload("Vaccines").Find(&babies).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch babies: "+err.Error())
		return
	}

	stats := schedule.ComputeStats(babies, time.Now())
	utils.Success(c, "Clinic stats computed successfully", stats)
}
