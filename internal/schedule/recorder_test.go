package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxtrack-server/internal/models"
)

func recorderBaby() models.Baby {
	return makeBaby("VX-2024-001", "Amara", "Ebot", "Buea Town",
		dose("v1", date(2023, time.December, 15), models.VaccineDue),
		dose("v2", date(2024, time.January, 26), models.VaccineDue),
		dose("v3", date(2024, time.September, 10), models.VaccinePending),
	)
}

func TestRecordOutcomeTaken(t *testing.T) {
	baby := recorderBaby()
	completed := date(2024, time.March, 20)

	updated, err := RecordOutcome(baby, "v2", DoseOutcome{
		Outcome:       OutcomeTaken,
		CompletedDate: completed,
		ProviderID:    "NURSE-MARY-EBOT",
		BatchNumber:   "PENTA-B1042",
	})
	require.NoError(t, err)

	record := updated.Vaccines[1]
	assert.Equal(t, models.VaccineCompleted, record.Status)
	require.NotNil(t, record.CompletedDate)
	assert.Equal(t, completed, *record.CompletedDate)
	assert.Equal(t, "NURSE-MARY-EBOT", record.ProviderID)
	assert.Equal(t, "PENTA-B1042", record.BatchNumber)

	// All other records keep their position and contents.
	assert.Equal(t, "v1", updated.Vaccines[0].ID)
	assert.Equal(t, models.VaccineDue, updated.Vaccines[0].Status)
	assert.Equal(t, "v3", updated.Vaccines[2].ID)
	assert.Equal(t, models.VaccinePending, updated.Vaccines[2].Status)
}

func TestRecordOutcomeIsCopyOnWrite(t *testing.T) {
	baby := recorderBaby()

	_, err := RecordOutcome(baby, "v1", DoseOutcome{
		Outcome:       OutcomeTaken,
		CompletedDate: date(2024, time.March, 20),
		ProviderID:    "NURSE-MARY-EBOT",
		BatchNumber:   "BCG-0007",
	})
	require.NoError(t, err)

	// The input baby must be untouched.
	assert.Equal(t, models.VaccineDue, baby.Vaccines[0].Status)
	assert.Nil(t, baby.Vaccines[0].CompletedDate)
}

func TestRecordOutcomeTakenRequiresDetails(t *testing.T) {
	baby := recorderBaby()

	_, err := RecordOutcome(baby, "v1", DoseOutcome{
		Outcome:       OutcomeTaken,
		CompletedDate: date(2024, time.March, 20),
		ProviderID:    "NURSE-MARY-EBOT",
		// batch number missing
	})
	assert.ErrorIs(t, err, ErrMissingDetails)
}

func TestRecordOutcomeMissedClearsMetadata(t *testing.T) {
	baby := recorderBaby()

	updated, err := RecordOutcome(baby, "v2", DoseOutcome{
		Outcome:     OutcomeMissed,
		ProviderID:  "ignored",
		BatchNumber: "ignored",
	})
	require.NoError(t, err)

	record := updated.Vaccines[1]
	assert.Equal(t, models.VaccineMissed, record.Status)
	assert.Nil(t, record.CompletedDate)
	assert.Empty(t, record.ProviderID)
	assert.Empty(t, record.BatchNumber)
}

func TestRecordOutcomeUnknownDose(t *testing.T) {
	_, err := RecordOutcome(recorderBaby(), "nope", DoseOutcome{Outcome: OutcomeMissed})
	assert.ErrorIs(t, err, ErrDoseNotFound)
}

func TestRecordOutcomeInvalidOutcome(t *testing.T) {
	_, err := RecordOutcome(recorderBaby(), "v1", DoseOutcome{Outcome: "ADMINISTERED"})
	assert.ErrorIs(t, err, ErrInvalidOutcome)
}

func TestRecordOutcomeOverwriteNeedsConfirmation(t *testing.T) {
	baby := recorderBaby()

	updated, err := RecordOutcome(baby, "v1", DoseOutcome{
		Outcome:       OutcomeTaken,
		CompletedDate: date(2024, time.March, 20),
		ProviderID:    "NURSE-MARY-EBOT",
		BatchNumber:   "BCG-0007",
	})
	require.NoError(t, err)

	// A second entry without confirmation is rejected.
	_, err = RecordOutcome(updated, "v1", DoseOutcome{Outcome: OutcomeMissed})
	assert.ErrorIs(t, err, ErrAlreadyRecorded)

	// With explicit confirmation the correction goes through.
	corrected, err := RecordOutcome(updated, "v1", DoseOutcome{
		Outcome:          OutcomeMissed,
		ConfirmOverwrite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VaccineMissed, corrected.Vaccines[0].Status)
	assert.Empty(t, corrected.Vaccines[0].BatchNumber)
}

func TestRecordedOutcomeSurvivesTimePassing(t *testing.T) {
	baby := recorderBaby()

	updated, err := RecordOutcome(baby, "v1", DoseOutcome{
		Outcome:       OutcomeTaken,
		CompletedDate: date(2024, time.March, 20),
		ProviderID:    "NURSE-MARY-EBOT",
		BatchNumber:   "BCG-0007",
	})
	require.NoError(t, err)

	assert.Equal(t, models.VaccineCompleted, EffectiveStatus(updated.Vaccines[0], date(2030, time.January, 1)))
}
