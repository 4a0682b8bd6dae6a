package handlers

import (
	"time"

	"vaxtrack-server/internal/middleware"
	"vaxtrack-server/internal/models"
	"vaxtrack-server/internal/schedule"
	"vaxtrack-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dateLayout is the wire format for calendar dates (no time component).
const dateLayout = "2006-01-02"

// BabyHandler handles baby registration and record requests.
type BabyHandler struct {
	DB *gorm.DB
}

// NewBabyHandler creates a new BabyHandler.
func NewBabyHandler(db *gorm.DB) *BabyHandler {
	return &BabyHandler{DB: db}
}

// RegisterBabyRequest represents the request body for registering a baby.
type RegisterBabyRequest struct {
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	DateOfBirth string   `json:"dateOfBirth" binding:"required"` // YYYY-MM-DD
	Gender      string   `json:"gender" binding:"required,oneof=M F"`
	ParentName  string   `json:"parentName"`
	ParentPhone string   `json:"parentPhone"`
	Village     string   `json:"village"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// BabyView is a baby with its dose statuses resolved for the current
// date, plus the derived display fields the dashboard and detail card
// need. Effective statuses are computed at read time and never written
// back.
type BabyView struct {
	models.Baby
	CoveragePercentage int                   `json:"coveragePercentage"`
	NextDose           *models.VaccineRecord `json:"nextDose,omitempty"`
}

// newBabyView resolves effective dose statuses for display.
func newBabyView(baby models.Baby, today time.Time) BabyView {
	resolved := make([]models.VaccineRecord, len(baby.Vaccines))
	for i, v := range baby.Vaccines {
		v.Status = schedule.EffectiveStatus(v, today)
		resolved[i] = v
	}
	baby.Vaccines = resolved

	view := BabyView{
		Baby:               baby,
		CoveragePercentage: schedule.CoveragePercentage(baby),
	}
	if next, ok := schedule.NextUpcomingDose(baby, today); ok {
		view.NextDose = &next
	}
	return view
}

// RegisterBaby handles registering a new baby and generating its full
// immunization schedule from the date of birth.
func (h *BabyHandler) RegisterBaby(c *gin.Context) {
	var req RegisterBabyRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		utils.BadRequest(c, "Invalid dateOfBirth format. Please use YYYY-MM-DD")
		return
	}

	registeredByID, _ := middleware.GetUserIDFromContext(c)
	today := time.Now()

	vaccines, err := schedule.Generate(dob, today)
	if err != nil {
		utils.BadRequest(c, "Failed to generate immunization schedule: "+err.Error())
		return
	}

	// The QR code printed on the health card is the baby ID itself, so
	// the ID is assigned up front rather than in the BeforeCreate hook.
	id := uuid.New().String()
	baby := models.Baby{
		BaseModel:        models.BaseModel{ID: id},
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		ParentName:       req.ParentName,
		ParentPhone:      req.ParentPhone,
		Village:          req.Village,
		RegistrationDate: today,
		QRCode:           id,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		RegisteredByID:   registeredByID,
		Vaccines:         vaccines,
	}

	if err := h.DB.Create(&baby).Error; err != nil {
		utils.InternalServerError(c, "Failed to register baby: "+err.Error())
		return
	}

	utils.Created(c, "Baby registered successfully", newBabyView(baby, today))
}

// ListBabies handles fetching babies with the dashboard's status filter
// and free-text search applied.
func (h *BabyHandler) ListBabies(c *gin.Context) {
	filter, err := schedule.ParseFilter(c.Query("filter"))
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var babies []models.Baby
	if err := h.DB.
		Preload("Vaccines", func(db *gorm.DB) *gorm.DB { return db.Order("seq_no asc") }).
		Order("registration_date asc").
		Find(&babies).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch babies: "+err.Error())
		return
	}

	today := time.Now()
	matched := schedule.FilterBabies(babies, filter, c.Query("search"), today)

	views := make([]BabyView, len(matched))
	for i, b := range matched {
		views[i] = newBabyView(b, today)
	}

	utils.Success(c, "Babies fetched successfully", views)
}

// GetBabyByID handles fetching a single baby record with its dose list,
// weight history and derived coverage figures.
func (h *BabyHandler) GetBabyByID(c *gin.Context) {
	babyID := c.Param("id")

	var baby models.Baby
	if err := h.DB.
		Preload("Vaccines", func(db *gorm.DB) *gorm.DB { return db.Order("seq_no asc") }).
		Preload("WeightHistory", func(db *gorm.DB) *gorm.DB { return db.Order("age_months asc") }).
		First(&baby, "id = ? OR qr_code = ?", babyID, babyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Baby not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Baby fetched successfully", newBabyView(baby, time.Now()))
}

// AddGrowthPointRequest represents the request body for appending a
// weight measurement.
type AddGrowthPointRequest struct {
	AgeMonths    float64 `json:"ageMonths" binding:"min=0"`
	WeightKg     float64 `json:"weightKg" binding:"required,gt=0"`
	RecordedDate string  `json:"date"` // YYYY-MM-DD, defaults to today
}

// AddGrowthPoint handles appending a weight measurement to a baby's
// growth history.
func (h *BabyHandler) AddGrowthPoint(c *gin.Context) {
	babyID := c.Param("id")

	var req AddGrowthPointRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var baby models.Baby
	if err := h.DB.First(&baby, "id = ?", babyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Baby not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	recordedDate := time.Now()
	if req.RecordedDate != "" {
		var err error
		recordedDate, err = time.Parse(dateLayout, req.RecordedDate)
		if err != nil {
			utils.BadRequest(c, "Invalid date format. Please use YYYY-MM-DD")
			return
		}
	}

	point := models.GrowthPoint{
		BabyID:       baby.ID,
		AgeMonths:    req.AgeMonths,
		WeightKg:     req.WeightKg,
		RecordedDate: recordedDate,
	}

	if err := h.DB.Create(&point).Error; err != nil {
		utils.InternalServerError(c, "Failed to save growth point: "+err.Error())
		return
	}

	utils.Created(c, "Growth point recorded successfully", point)
}
