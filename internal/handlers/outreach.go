package handlers

import (
	"time"

	"vaxtrack-server/internal/middleware"
	"vaxtrack-server/internal/models"
	"vaxtrack-server/internal/schedule"
	"vaxtrack-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OutreachHandler handles outreach visit requests.
type OutreachHandler struct {
	DB *gorm.DB
}

// NewOutreachHandler creates a new OutreachHandler.
func NewOutreachHandler(db *gorm.DB) *OutreachHandler {
	return &OutreachHandler{DB: db}
}

// CreateOutreachVisitRequest represents the request body for scheduling
// an outreach visit.
type CreateOutreachVisitRequest struct {
	BabyID        string `json:"babyId" binding:"required,uuid"`
	AssigneeID    string `json:"assigneeId"` // defaults to the authenticated user
	ScheduledDate string `json:"scheduledDate" binding:"required"` // YYYY-MM-DD
	Reason        string `json:"reason" binding:"required"`
	Notes         string `json:"notes"`
}

// CreateOutreachVisit handles scheduling a follow-up visit for a baby,
// typically one surfaced by the dashboard's outreach filter.
func (h *OutreachHandler) CreateOutreachVisit(c *gin.Context) {
	var req CreateOutreachVisitRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	scheduledDate, err := time.Parse(dateLayout, req.ScheduledDate)
	if err != nil {
		utils.BadRequest(c, "Invalid scheduledDate format. Please use YYYY-MM-DD")
		return
	}

	assigneeID := req.AssigneeID
	if assigneeID == "" {
		userID, exists := middleware.GetUserIDFromContext(c)
		if !exists {
			utils.Unauthorized(c, "User not authenticated")
			return
		}
		assigneeID = userID
	}

	// Verify baby exists
	var baby models.Baby
	if err := h.DB.Preload("Vaccines").First(&baby, "id = ?", req.BabyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Baby not found")
		} else {
			utils.InternalServerError(c, "Database error verifying baby: "+err.Error())
		}
		return
	}
	// Verify assignee exists
	var assignee models.User
	if err := h.DB.First(&assignee, "id = ?", assigneeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Assignee not found")
		} else {
			utils.InternalServerError(c, "Database error verifying assignee: "+err.Error())
		}
		return
	}

	visit := models.OutreachVisit{
		BabyID:        baby.ID,
		AssigneeID:    assigneeID,
		ScheduledDate: scheduledDate,
		Reason:        req.Reason,
		Notes:         req.Notes,
		Status:        models.VisitPlanned,
	}

	if err := h.DB.Create(&visit).Error; err != nil {
		utils.InternalServerError(c, "Failed to create outreach visit: "+err.Error())
		return
	}

	utils.Created(c, "Outreach visit scheduled successfully", visit)
}

// GetOutreachVisits handles listing outreach visits, optionally
// restricted to a status.
func (h *OutreachHandler) GetOutreachVisits(c *gin.Context) {
	query := h.DB.Preload("Baby").Order("scheduled_date asc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if assigneeID := c.Query("assigneeId"); assigneeID != "" {
		query = query.Where("assignee_id = ?", assigneeID)
	}

	var visits []models.OutreachVisit
	if err := query.Find(&visits).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch outreach visits: "+err.Error())
		return
	}

	utils.Success(c, "Outreach visits fetched successfully", visits)
}

// GetOutreachTargets handles listing the babies that currently need
// outreach: those with at least one missed dose.
func (h *OutreachHandler) GetOutreachTargets(c *gin.Context) {
	var babies []models.Baby
	if err := h.DB.
		Preload("Vaccines", func(db *gorm.DB) *gorm.DB { return db.Order("seq_no asc") }).
		Find(&babies).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch babies: "+err.Error())
		return
	}

	today := time.Now()
	targets := schedule.FilterBabies(babies, schedule.FilterOutreach, c.Query("search"), today)

	views := make([]BabyView, len(targets))
	for i, b := range targets {
		views[i] = newBabyView(b, today)
	}

	utils.Success(c, "Outreach targets fetched successfully", views)
}

// UpdateOutreachVisitStatusRequest represents the request body for
// updating a visit's status.
type UpdateOutreachVisitStatusRequest struct {
	Status models.OutreachVisitStatus `json:"status" binding:"required,oneof=PLANNED COMPLETED CANCELLED"`
	Notes  string                     `json:"notes"` // e.g. visit outcome or cancellation reason
}

// UpdateOutreachVisitStatus handles closing or cancelling a visit.
func (h *OutreachHandler) UpdateOutreachVisitStatus(c *gin.Context) {
	visitID := c.Param("id")

	var req UpdateOutreachVisitStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var visit models.OutreachVisit
	if err := h.DB.First(&visit, "id = ?", visitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Outreach visit not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	visit.Status = req.Status
	if req.Notes != "" {
		visit.Notes = req.Notes
	}

	if err := h.DB.Save(&visit).Error; err != nil {
		utils.InternalServerError(c, "Failed to update outreach visit: "+err.Error())
		return
	}

	utils.Success(c, "Outreach visit updated successfully", visit)
}
