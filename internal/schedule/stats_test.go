package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxtrack-server/internal/models"
)

func makeBaby(id, firstName, lastName, village string, vaccines ...models.VaccineRecord) models.Baby {
	return models.Baby{
		BaseModel: models.BaseModel{ID: id},
		FirstName: firstName,
		LastName:  lastName,
		Village:   village,
		Vaccines:  vaccines,
	}
}

// testClinic builds a small clinic mirroring the dashboard scenarios:
// one baby with a missed dose, one fully caught up, one newborn with an
// untouched future schedule.
func testClinic() ([]models.Baby, time.Time) {
	today := date(2024, time.March, 20)

	amara := makeBaby("VX-2024-001", "Amara", "Ebot", "Buea Town",
		dose("a1", date(2023, time.December, 15), models.VaccineCompleted),
		dose("a2", date(2024, time.January, 26), models.VaccineMissed),
		dose("a3", date(2024, time.September, 10), models.VaccinePending),
	)
	samuel := makeBaby("VX-2024-002", "Samuel", "Ndoh", "Molyko",
		dose("s1", date(2024, time.January, 20), models.VaccineCompleted),
		dose("s2", date(2024, time.March, 2), models.VaccineCompleted),
		dose("s3", date(2024, time.October, 16), models.VaccinePending),
	)
	grace := makeBaby("VX-2024-003", "Grace", "Tanyi", "Bonduma",
		dose("g1", date(2024, time.April, 1), models.VaccinePending),
		dose("g2", date(2024, time.May, 13), models.VaccinePending),
	)
	return []models.Baby{amara, samuel, grace}, today
}

func TestComputeStats(t *testing.T) {
	babies, today := testClinic()

	stats := ComputeStats(babies, today)

	assert.Equal(t, 3, stats.TotalBabies)
	assert.Equal(t, 1, stats.MissedDoseCount)
	assert.Equal(t, 1, stats.ActiveOutreachCount)
	// Samuel has every due dose completed; Grace has no due doses yet.
	// Amara's missed dose keeps her out of the covered count.
	assert.Equal(t, 2, stats.CompletedVaxCount)
}

func TestComputeStatsIsIdempotent(t *testing.T) {
	babies, today := testClinic()

	first := ComputeStats(babies, today)
	second := ComputeStats(babies, today)

	assert.Equal(t, first, second)
	// The aggregation must not mutate its input.
	assert.Equal(t, models.VaccineMissed, babies[0].Vaccines[1].Status)
}

func TestOutreachCountMatchesOutreachFilter(t *testing.T) {
	babies, today := testClinic()

	stats := ComputeStats(babies, today)
	outreach := FilterBabies(babies, FilterOutreach, "", today)

	assert.Equal(t, stats.ActiveOutreachCount, len(outreach))
	require.Len(t, outreach, 1)
	assert.Equal(t, "VX-2024-001", outreach[0].ID)
}

func TestFilterBabiesByStatus(t *testing.T) {
	babies, today := testClinic()

	missed := FilterBabies(babies, FilterMissed, "", today)
	require.Len(t, missed, 1)
	assert.Equal(t, "VX-2024-001", missed[0].ID)

	completed := FilterBabies(babies, FilterCompleted, "", today)
	require.Len(t, completed, 2)
	assert.Equal(t, "VX-2024-002", completed[0].ID)
	assert.Equal(t, "VX-2024-003", completed[1].ID)

	// Amara's pending dose for September is not due yet, so nobody in
	// the clinic has an effectively DUE dose today.
	assert.Empty(t, FilterBabies(babies, FilterDueToday, "", today))

	all := FilterBabies(babies, FilterAll, "", today)
	assert.Len(t, all, 3)
}

func TestFilterBabiesDueToday(t *testing.T) {
	babies, _ := testClinic()
	// Move the clock past Grace's first due date.
	later := date(2024, time.April, 2)

	due := FilterBabies(babies, FilterDueToday, "", later)
	require.Len(t, due, 1)
	assert.Equal(t, "VX-2024-003", due[0].ID)
}

func TestFilterBabiesSearch(t *testing.T) {
	babies, today := testClinic()

	byName := FilterBabies(babies, FilterAll, "amara", today)
	require.Len(t, byName, 1)
	assert.Equal(t, "VX-2024-001", byName[0].ID)

	byID := FilterBabies(babies, FilterAll, "vx-2024-002", today)
	require.Len(t, byID, 1)
	assert.Equal(t, "Samuel", byID[0].FirstName)

	byVillage := FilterBabies(babies, FilterAll, "MOLYKO", today)
	require.Len(t, byVillage, 1)
	assert.Equal(t, "VX-2024-002", byVillage[0].ID)

	assert.Empty(t, FilterBabies(babies, FilterAll, "nonexistent", today))
}

func TestFilterBabiesSearchAndStatusBothApply(t *testing.T) {
	babies, today := testClinic()

	// Samuel matches the search but has no missed dose.
	assert.Empty(t, FilterBabies(babies, FilterMissed, "samuel", today))
	// Amara matches both conditions.
	assert.Len(t, FilterBabies(babies, FilterMissed, "ebot", today), 1)
}

func TestFilterBabiesPreservesInputOrder(t *testing.T) {
	babies, today := testClinic()

	all := FilterBabies(babies, FilterAll, "", today)
	require.Len(t, all, 3)
	for i := range babies {
		assert.Equal(t, babies[i].ID, all[i].ID)
	}
}

func TestParseFilter(t *testing.T) {
	for _, s := range []string{"", "ALL", "all", "MISSED", "due_today", "COMPLETED", "outreach"} {
		_, err := ParseFilter(s)
		assert.NoError(t, err, "filter %q", s)
	}

	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = ParseFilter("OVERDUE")
	assert.Error(t, err)
}
