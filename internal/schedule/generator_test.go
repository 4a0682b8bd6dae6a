package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxtrack-server/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateProducesFullCalendar(t *testing.T) {
	dob := date(2023, time.December, 15)
	today := date(2024, time.March, 20)

	records, err := Generate(dob, today)
	require.NoError(t, err)
	require.Len(t, records, len(Calendar))

	for i, r := range records {
		assert.Equal(t, i, r.SeqNo)
		assert.Equal(t, Calendar[i].Name, r.Name)
		assert.Equal(t, Calendar[i].ShortName, r.ShortName)
		assert.Equal(t, dob.AddDate(0, 0, Calendar[i].AgeDays), r.DueDate)
	}
}

func TestGenerateDueDateRollsOverYearBoundary(t *testing.T) {
	dob := date(2023, time.December, 15)
	today := date(2024, time.March, 20)

	records, err := Generate(dob, today)
	require.NoError(t, err)

	// Birth doses keep the date of birth itself.
	assert.Equal(t, date(2023, time.December, 15), records[0].DueDate)
	assert.Equal(t, date(2023, time.December, 15), records[1].DueDate)
	// Day 42 lands in the next calendar year.
	assert.Equal(t, date(2024, time.January, 26), records[2].DueDate)
}

func TestGenerateInitialStatuses(t *testing.T) {
	dob := date(2023, time.December, 15)
	today := date(2024, time.March, 20)

	records, err := Generate(dob, today)
	require.NoError(t, err)

	for _, r := range records {
		assert.NotEqual(t, models.VaccineCompleted, r.Status)
		assert.NotEqual(t, models.VaccineMissed, r.Status)
		if !r.DueDate.After(today) {
			assert.Equal(t, models.VaccineDue, r.Status, "%s due %s", r.ShortName, r.DueDate)
		} else {
			assert.Equal(t, models.VaccinePending, r.Status, "%s due %s", r.ShortName, r.DueDate)
		}
	}

	// Day 98 doses fall due 2024-03-22, two days after the reference
	// date, so they are still pending while the day 70 ones are due.
	assert.Equal(t, models.VaccineDue, records[6].Status)
	assert.Equal(t, models.VaccinePending, records[10].Status)
}

func TestGenerateDueOnReferenceDateIsDue(t *testing.T) {
	dob := date(2024, time.January, 1)
	today := dob.AddDate(0, 0, 42)

	records, err := Generate(dob, today)
	require.NoError(t, err)
	assert.Equal(t, models.VaccineDue, records[2].Status)
}

func TestGenerateFutureDateOfBirth(t *testing.T) {
	dob := date(2030, time.June, 1)
	today := date(2024, time.March, 20)

	records, err := Generate(dob, today)
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, models.VaccinePending, r.Status)
	}
}

func TestGenerateRecordIDsAreUnique(t *testing.T) {
	records, err := Generate(date(2024, time.January, 1), date(2024, time.March, 1))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, r := range records {
		assert.NotEmpty(t, r.ID)
		assert.False(t, seen[r.ID], "duplicate dose ID %s", r.ID)
		seen[r.ID] = true
	}
}

func TestGenerateRejectsZeroDateOfBirth(t *testing.T) {
	_, err := Generate(time.Time{}, date(2024, time.March, 20))
	assert.ErrorIs(t, err, ErrInvalidDateOfBirth)
}

func TestTargetAgeLabel(t *testing.T) {
	assert.Equal(t, "Birth", TargetAgeLabel(0))
	assert.Equal(t, "6 Weeks", TargetAgeLabel(42))
	assert.Equal(t, "10 Weeks", TargetAgeLabel(70))
	assert.Equal(t, "14 Weeks", TargetAgeLabel(98))
	assert.Equal(t, "38 Weeks", TargetAgeLabel(270))
	// Integer division, remainder discarded.
	assert.Equal(t, "6 Weeks", TargetAgeLabel(45))
}
