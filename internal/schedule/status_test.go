package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxtrack-server/internal/models"
)

func dose(id string, due time.Time, status models.VaccineStatus) models.VaccineRecord {
	return models.VaccineRecord{
		BaseModel: models.BaseModel{ID: id},
		DueDate:   due,
		Status:    status,
	}
}

func TestEffectiveStatusTerminalStatesAreStable(t *testing.T) {
	due := date(2024, time.January, 26)
	farFuture := date(2030, time.January, 1)

	completed := dose("v1", due, models.VaccineCompleted)
	missed := dose("v2", due, models.VaccineMissed)

	assert.Equal(t, models.VaccineCompleted, EffectiveStatus(completed, farFuture))
	assert.Equal(t, models.VaccineMissed, EffectiveStatus(missed, farFuture))
}

func TestEffectiveStatusPendingBecomesDue(t *testing.T) {
	due := date(2024, time.January, 26)
	v := dose("v1", due, models.VaccinePending)

	assert.Equal(t, models.VaccinePending, EffectiveStatus(v, date(2024, time.January, 25)))
	assert.Equal(t, models.VaccineDue, EffectiveStatus(v, due))
	// Never reverts once the due date has passed.
	assert.Equal(t, models.VaccineDue, EffectiveStatus(v, date(2025, time.June, 1)))
}

func TestEffectiveStatusIgnoresTimeOfDay(t *testing.T) {
	due := time.Date(2024, time.January, 26, 23, 0, 0, 0, time.UTC)
	v := dose("v1", due, models.VaccinePending)

	morning := time.Date(2024, time.January, 26, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, models.VaccineDue, EffectiveStatus(v, morning))
}

func TestCoveragePercentage(t *testing.T) {
	due := date(2024, time.January, 1)

	baby := models.Baby{Vaccines: []models.VaccineRecord{
		dose("v1", due, models.VaccineCompleted),
		dose("v2", due, models.VaccineDue),
		dose("v3", due, models.VaccinePending),
		dose("v4", due, models.VaccinePending),
		dose("v5", due, models.VaccinePending),
		dose("v6", due, models.VaccinePending),
	}}

	// 1 of 6 administered rounds up to 17%.
	assert.Equal(t, 17, CoveragePercentage(baby))

	baby.Vaccines[1].Status = models.VaccineCompleted
	baby.Vaccines[2].Status = models.VaccineCompleted
	assert.Equal(t, 50, CoveragePercentage(baby))
}

func TestCoveragePercentageEmptyDoseList(t *testing.T) {
	assert.Equal(t, 0, CoveragePercentage(models.Baby{}))
}

func TestCoveragePercentageMissedDoesNotCount(t *testing.T) {
	due := date(2024, time.January, 1)
	baby := models.Baby{Vaccines: []models.VaccineRecord{
		dose("v1", due, models.VaccineCompleted),
		dose("v2", due, models.VaccineMissed),
	}}
	assert.Equal(t, 50, CoveragePercentage(baby))
}

func TestNextUpcomingDose(t *testing.T) {
	today := date(2024, time.March, 1)

	baby := models.Baby{Vaccines: []models.VaccineRecord{
		dose("v1", date(2024, time.January, 1), models.VaccineCompleted),
		dose("v2", date(2024, time.February, 1), models.VaccinePending), // effectively DUE
		dose("v3", date(2024, time.February, 1), models.VaccinePending), // effectively DUE, later in calendar
		dose("v4", date(2024, time.June, 1), models.VaccinePending),
	}}

	next, ok := NextUpcomingDose(baby, today)
	require.True(t, ok)
	assert.Equal(t, "v2", next.ID)
}

func TestNextUpcomingDoseFallsBackToPending(t *testing.T) {
	today := date(2024, time.March, 1)

	baby := models.Baby{Vaccines: []models.VaccineRecord{
		dose("v1", date(2024, time.January, 1), models.VaccineCompleted),
		dose("v2", date(2024, time.June, 1), models.VaccinePending),
	}}

	next, ok := NextUpcomingDose(baby, today)
	require.True(t, ok)
	assert.Equal(t, "v2", next.ID)
}

func TestNextUpcomingDoseNoneWhenAllResolved(t *testing.T) {
	today := date(2024, time.March, 1)

	baby := models.Baby{Vaccines: []models.VaccineRecord{
		dose("v1", date(2024, time.January, 1), models.VaccineCompleted),
		dose("v2", date(2024, time.February, 1), models.VaccineMissed),
	}}

	_, ok := NextUpcomingDose(baby, today)
	assert.False(t, ok)
}

func TestFullyCovered(t *testing.T) {
	today := date(2024, time.March, 1)

	covered := models.Baby{Vaccines: []models.VaccineRecord{
		dose("v1", date(2024, time.January, 1), models.VaccineCompleted),
		dose("v2", date(2024, time.June, 1), models.VaccinePending), // not yet due
	}}
	assert.True(t, FullyCovered(covered, today))

	overdue := models.Baby{Vaccines: []models.VaccineRecord{
		dose("v1", date(2024, time.January, 1), models.VaccineCompleted),
		dose("v2", date(2024, time.February, 1), models.VaccinePending), // overdue
	}}
	assert.False(t, FullyCovered(overdue, today))

	missed := models.Baby{Vaccines: []models.VaccineRecord{
		dose("v1", date(2024, time.January, 1), models.VaccineMissed),
	}}
	assert.False(t, FullyCovered(missed, today))

	// Vacuously covered with no records at all.
	assert.True(t, FullyCovered(models.Baby{}, today))
}
