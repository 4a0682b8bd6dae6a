package handlers

import (
	"errors"
	"time"

	"vaxtrack-server/internal/middleware"
	"vaxtrack-server/internal/models"
	"vaxtrack-server/internal/schedule"
	"vaxtrack-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DoseHandler handles clinical dose outcome requests.
type DoseHandler struct {
	DB *gorm.DB
}

// NewDoseHandler creates a new DoseHandler.
func NewDoseHandler(db *gorm.DB) *DoseHandler {
	return &DoseHandler{DB: db}
}

// RecordDoseOutcomeRequest represents the request body for recording a
// dose outcome.
type RecordDoseOutcomeRequest struct {
	Outcome          string `json:"outcome" binding:"required,oneof=TAKEN MISSED"`
	CompletedDate    string `json:"completedDate"` // YYYY-MM-DD, defaults to today for TAKEN
	ProviderID       string `json:"providerId"`    // defaults to the authenticated user
	BatchNumber      string `json:"batchNumber"`
	ConfirmOverwrite bool   `json:"confirmOverwrite"`
}

// RecordDoseOutcome handles recording a nurse-entered outcome for one
// dose. Route middleware restricts this to roles with clinical write
// permission; the update itself is applied through the schedule engine
// and then persisted.
func (h *DoseHandler) RecordDoseOutcome(c *gin.Context) {
	babyID := c.Param("id")
	doseID := c.Param("doseId")

	var req RecordDoseOutcomeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var baby models.Baby
	if err := h.DB.
		Preload("Vaccines", func(db *gorm.DB) *gorm.DB { return db.Order("seq_no asc") }).
		First(&baby, "id = ?", babyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Baby not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	outcome := schedule.DoseOutcome{
		Outcome:          schedule.Outcome(req.Outcome),
		ProviderID:       req.ProviderID,
		BatchNumber:      req.BatchNumber,
		ConfirmOverwrite: req.ConfirmOverwrite,
	}

	if outcome.Outcome == schedule.OutcomeTaken {
		if req.CompletedDate != "" {
			completed, err := time.Parse(dateLayout, req.CompletedDate)
			if err != nil {
				utils.BadRequest(c, "Invalid completedDate format. Please use YYYY-MM-DD")
				return
			}
			outcome.CompletedDate = completed
		} else {
			outcome.CompletedDate = time.Now()
		}
		// The administering provider defaults to the logged-in user.
		if outcome.ProviderID == "" {
			if userID, ok := middleware.GetUserIDFromContext(c); ok {
				outcome.ProviderID = userID
			}
		}
	}

	updated, err := schedule.RecordOutcome(baby, doseID, outcome)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDoseNotFound):
			utils.NotFound(c, "Dose record not found on this baby")
		case errors.Is(err, schedule.ErrAlreadyRecorded):
			utils.Conflict(c, "Dose already has a recorded outcome. Set confirmOverwrite to replace it.")
		default:
			utils.BadRequest(c, err.Error())
		}
		return
	}

	// Persist only the mutated record; everything else is unchanged.
	for _, v := range updated.Vaccines {
		if v.ID == doseID {
			if err := h.DB.Save(&v).Error; err != nil {
				utils.InternalServerError(c, "Failed to save dose outcome: "+err.Error())
				return
			}
			break
		}
	}

	utils.Success(c, "Dose outcome recorded successfully", newBabyView(updated, time.Now()))
}
