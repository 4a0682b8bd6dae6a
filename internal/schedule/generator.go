package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"vaxtrack-server/internal/models"
)

// ErrInvalidDateOfBirth is returned when a schedule is requested for a
// zero date of birth.
var ErrInvalidDateOfBirth = errors.New("date of birth is required")

// Generate produces the full dose list for a baby born on dateOfBirth,
// one record per calendar entry in calendar order. Each due date is
// dateOfBirth plus the entry's age offset in calendar days; a dose
// already due on the reference date starts as DUE, otherwise PENDING.
// Generation never emits COMPLETED or MISSED. A future date of birth is
// accepted and simply yields an all-PENDING list.
func Generate(dateOfBirth, today time.Time) ([]models.VaccineRecord, error) {
	if dateOfBirth.IsZero() {
		return nil, ErrInvalidDateOfBirth
	}

	records := make([]models.VaccineRecord, 0, len(Calendar))
	for i, spec := range Calendar {
		dueDate := dateOfBirth.AddDate(0, 0, spec.AgeDays)

		status := models.VaccinePending
		if onOrBefore(dueDate, today) {
			status = models.VaccineDue
		}

		records = append(records, models.VaccineRecord{
			BaseModel: models.BaseModel{ID: uuid.New().String()},
			SeqNo:     i,
			Name:      spec.Name,
			ShortName: spec.ShortName,
			TargetAge: TargetAgeLabel(spec.AgeDays),
			DueDate:   dueDate,
			Status:    status,
		})
	}
	return records, nil
}
