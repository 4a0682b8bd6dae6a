// Package schedule implements the immunization schedule engine: dose
// list generation from a date of birth, time-dependent status
// resolution, clinic-wide coverage statistics and clinical outcome
// recording. Every function is a pure computation over its inputs; the
// reference date ("today") is always passed in, never read from the
// clock, so results are deterministic and testable.
package schedule

import "fmt"

// DoseSpec is one entry of the immunization calendar: a vaccine dose
// and the age in days at which it becomes due.
type DoseSpec struct {
	Name      string
	ShortName string
	AgeDays   int
}

// Calendar is the Cameroon EPI schedule (WHO aligned). Order matters:
// generated dose lists preserve it, and doses sharing an age offset
// sort by their position here.
var Calendar = []DoseSpec{
	{Name: "BCG", ShortName: "BCG", AgeDays: 0},
	{Name: "Oral Polio Vaccine 0", ShortName: "OPV-0", AgeDays: 0},
	{Name: "Penta 1", ShortName: "Penta-1", AgeDays: 42}, // 6 weeks
	{Name: "Pneumo 1", ShortName: "PCV-1", AgeDays: 42},
	{Name: "Rotarix 1", ShortName: "Rota-1", AgeDays: 42},
	{Name: "Oral Polio 1", ShortName: "OPV-1", AgeDays: 42},
	{Name: "Penta 2", ShortName: "Penta-2", AgeDays: 70}, // 10 weeks
	{Name: "Pneumo 2", ShortName: "PCV-2", AgeDays: 70},
	{Name: "Rotarix 2", ShortName: "Rota-2", AgeDays: 70},
	{Name: "Oral Polio 2", ShortName: "OPV-2", AgeDays: 70},
	{Name: "Penta 3", ShortName: "Penta-3", AgeDays: 98}, // 14 weeks
	{Name: "Pneumo 3", ShortName: "PCV-3", AgeDays: 98},
	{Name: "Inactivated Polio", ShortName: "IPV", AgeDays: 98},
	{Name: "Oral Polio 3", ShortName: "OPV-3", AgeDays: 98},
	{Name: "Measles-Rubella 1", ShortName: "MR-1", AgeDays: 270}, // 9 months
	{Name: "Yellow Fever", ShortName: "YF", AgeDays: 270},
}

// TargetAgeLabel returns the human label for an age offset: "Birth" for
// day zero, otherwise whole weeks (integer division, remainder
// discarded).
func TargetAgeLabel(ageDays int) string {
	if ageDays == 0 {
		return "Birth"
	}
	return fmt.Sprintf("%d Weeks", ageDays/7)
}
