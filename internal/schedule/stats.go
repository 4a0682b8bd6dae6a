package schedule

import (
	"fmt"
	"strings"
	"time"

	"vaxtrack-server/internal/models"
)

// ClinicStats holds the dashboard counters, recomputed on demand from
// the full baby collection and never cached.
type ClinicStats struct {
	TotalBabies         int `json:"totalBabies"`
	CompletedVaxCount   int `json:"completedVaxCount"` // babies fully covered as of today
	MissedDoseCount     int `json:"missedDoseCount"`
	ActiveOutreachCount int `json:"activeOutreachCount"` // babies with at least one missed dose
}

// Filter selects which babies a dashboard list shows.
type Filter string

const (
	FilterAll       Filter = "ALL"
	FilterMissed    Filter = "MISSED"
	FilterDueToday  Filter = "DUE_TODAY"
	FilterCompleted Filter = "COMPLETED"
	FilterOutreach  Filter = "OUTREACH"
)

// ParseFilter converts a query-string value into a Filter. An empty
// value means no filtering.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToUpper(s)) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterMissed:
		return FilterMissed, nil
	case FilterDueToday:
		return FilterDueToday, nil
	case FilterCompleted:
		return FilterCompleted, nil
	case FilterOutreach:
		return FilterOutreach, nil
	default:
		return "", fmt.Errorf("unknown filter: %q", s)
	}
}

// ComputeStats aggregates per-baby dose states into clinic-wide
// counters. The same inputs and the same reference date always produce
// the same result.
func ComputeStats(babies []models.Baby, today time.Time) ClinicStats {
	stats := ClinicStats{TotalBabies: len(babies)}
	for _, b := range babies {
		hasMissed := false
		for _, v := range b.Vaccines {
			if EffectiveStatus(v, today) == models.VaccineMissed {
				stats.MissedDoseCount++
				hasMissed = true
			}
		}
		if hasMissed {
			stats.ActiveOutreachCount++
		}
		if FullyCovered(b, today) {
			stats.CompletedVaxCount++
		}
	}
	return stats
}

// hasEffective reports whether any of the baby's doses resolves to the
// given status today.
func hasEffective(b models.Baby, status models.VaccineStatus, today time.Time) bool {
	for _, v := range b.Vaccines {
		if EffectiveStatus(v, today) == status {
			return true
		}
	}
	return false
}

// matchesSearch does a case-insensitive substring match against the
// baby's name, ID and village. An empty query matches everything.
func matchesSearch(b models.Baby, search string) bool {
	if search == "" {
		return true
	}
	haystack := strings.ToLower(b.FirstName + " " + b.LastName + " " + b.ID + " " + b.Village)
	return strings.Contains(haystack, strings.ToLower(search))
}

// FilterBabies returns the babies matching both the search query and
// the status filter, preserving the input order. The filters mirror the
// dashboard cards: MISSED and OUTREACH select babies with at least one
// missed dose, DUE_TODAY babies with at least one dose currently due,
// and COMPLETED babies that are fully covered as of today.
func FilterBabies(babies []models.Baby, filter Filter, search string, today time.Time) []models.Baby {
	matched := make([]models.Baby, 0, len(babies))
	for _, b := range babies {
		if !matchesSearch(b, search) {
			continue
		}
		switch filter {
		case FilterMissed, FilterOutreach:
			if !hasEffective(b, models.VaccineMissed, today) {
				continue
			}
		case FilterDueToday:
			if !hasEffective(b, models.VaccineDue, today) {
				continue
			}
		case FilterCompleted:
			if !FullyCovered(b, today) {
				continue
			}
		}
		matched = append(matched, b)
	}
	return matched
}
