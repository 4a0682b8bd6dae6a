package schedule

import (
	"errors"
	"time"

	"vaxtrack-server/internal/models"
)

// Outcome is the result a nurse enters for a dose.
type Outcome string

const (
	OutcomeTaken  Outcome = "TAKEN"
	OutcomeMissed Outcome = "MISSED"
)

var (
	// ErrDoseNotFound is returned when the dose ID does not exist on
	// the baby. Never a silent no-op: a miss here is a data-entry bug.
	ErrDoseNotFound = errors.New("dose record not found")
	// ErrAlreadyRecorded is returned when recording over a COMPLETED or
	// MISSED dose without explicit confirmation, so batch and provider
	// history is not overwritten by accident.
	ErrAlreadyRecorded = errors.New("dose already has a recorded outcome")
	// ErrMissingDetails is returned when a TAKEN outcome lacks the
	// completed date, provider or batch number.
	ErrMissingDetails = errors.New("administered dose requires completed date, provider and batch number")
	// ErrInvalidOutcome is returned for an outcome other than TAKEN or
	// MISSED.
	ErrInvalidOutcome = errors.New("outcome must be TAKEN or MISSED")
)

// DoseOutcome carries the nurse-entered result for a single dose.
// ConfirmOverwrite must be set to replace an outcome that was already
// recorded.
type DoseOutcome struct {
	Outcome          Outcome
	CompletedDate    time.Time
	ProviderID       string
	BatchNumber      string
	ConfirmOverwrite bool
}

// RecordOutcome applies an outcome to one dose record and returns the
// updated baby. The update is copy-on-write: the input baby and its
// dose list are left untouched, so concurrent readers never observe a
// half-applied change. All other records keep their position and
// contents.
func RecordOutcome(b models.Baby, doseID string, o DoseOutcome) (models.Baby, error) {
	if o.Outcome != OutcomeTaken && o.Outcome != OutcomeMissed {
		return models.Baby{}, ErrInvalidOutcome
	}
	if o.Outcome == OutcomeTaken && (o.CompletedDate.IsZero() || o.ProviderID == "" || o.BatchNumber == "") {
		return models.Baby{}, ErrMissingDetails
	}

	idx := -1
	for i, v := range b.Vaccines {
		if v.ID == doseID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Baby{}, ErrDoseNotFound
	}
	if b.Vaccines[idx].Status.Terminal() && !o.ConfirmOverwrite {
		return models.Baby{}, ErrAlreadyRecorded
	}

	vaccines := make([]models.VaccineRecord, len(b.Vaccines))
	copy(vaccines, b.Vaccines)

	record := vaccines[idx]
	switch o.Outcome {
	case OutcomeTaken:
		completed := o.CompletedDate
		record.Status = models.VaccineCompleted
		record.CompletedDate = &completed
		record.ProviderID = o.ProviderID
		record.BatchNumber = o.BatchNumber
	case OutcomeMissed:
		record.Status = models.VaccineMissed
		record.CompletedDate = nil
		record.ProviderID = ""
		record.BatchNumber = ""
	}
	vaccines[idx] = record

	updated := b
	updated.Vaccines = vaccines
	return updated, nil
}
