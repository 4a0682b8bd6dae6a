package schedule

import (
	"math"
	"time"

	"vaxtrack-server/internal/models"
)

// dateOnly strips the time-of-day component so comparisons are in whole
// calendar days regardless of the clock or zone on the inputs.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func onOrBefore(d, today time.Time) bool {
	return !dateOnly(d).After(dateOnly(today))
}

// EffectiveStatus resolves the status a dose record should display and
// aggregate under on the given day. COMPLETED and MISSED are terminal
// and returned as-is; otherwise a dose is DUE once its due date has
// arrived and PENDING before that. The resolution happens at read time
// because "today" advances without any write to the record.
func EffectiveStatus(v models.VaccineRecord, today time.Time) models.VaccineStatus {
	if v.Status.Terminal() {
		return v.Status
	}
	if onOrBefore(v.DueDate, today) {
		return models.VaccineDue
	}
	return models.VaccinePending
}

// CoveragePercentage returns the share of the baby's doses that have
// been administered, rounded to the nearest whole percent. COMPLETED is
// terminal, so the figure does not depend on the reference date. A baby
// with no dose records is 0%, never a division by zero.
func CoveragePercentage(b models.Baby) int {
	if len(b.Vaccines) == 0 {
		return 0
	}
	completed := 0
	for _, v := range b.Vaccines {
		if v.Status == models.VaccineCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(b.Vaccines))))
}

// NextUpcomingDose returns the dose a nurse should act on next: the
// first record in calendar order that is effectively DUE, else the
// first PENDING one. The second return is false when every dose has a
// terminal status.
func NextUpcomingDose(b models.Baby, today time.Time) (models.VaccineRecord, bool) {
	for _, v := range b.Vaccines {
		if EffectiveStatus(v, today) == models.VaccineDue {
			return v, true
		}
	}
	for _, v := range b.Vaccines {
		if EffectiveStatus(v, today) == models.VaccinePending {
			return v, true
		}
	}
	return models.VaccineRecord{}, false
}

// FullyCovered reports whether every dose that is currently relevant
// (due date on or before today) has been administered. Doses not yet
// due do not count against coverage, so a newborn with an untouched
// future schedule is covered "so far". An empty dose list is vacuously
// covered.
func FullyCovered(b models.Baby, today time.Time) bool {
	for _, v := range b.Vaccines {
		if onOrBefore(v.DueDate, today) && EffectiveStatus(v, today) != models.VaccineCompleted {
			return false
		}
	}
	return true
}
