package models

import (
	"time"
)

// VaccineStatus represents the status of a scheduled dose
type VaccineStatus string

const (
	VaccinePending   VaccineStatus = "PENDING"
	VaccineDue       VaccineStatus = "DUE"
	VaccineMissed    VaccineStatus = "MISSED"
	VaccineCompleted VaccineStatus = "COMPLETED"
)

// Terminal reports whether the status was set by an explicit clinical
// action and must never be recomputed.
func (s VaccineStatus) Terminal() bool {
	return s == VaccineCompleted || s == VaccineMissed
}

// VaccineRecord represents one scheduled dose for a specific baby.
// Records are created once at registration and mutated only by a
// clinical outcome; they are never deleted.
type VaccineRecord struct {
	BaseModel
	BabyID        string        `gorm:"size:36;index" json:"babyId"`
	SeqNo         int           `gorm:"not null" json:"seqNo"` // position in the immunization calendar
	Name          string        `gorm:"size:100;not null" json:"name"`
	ShortName     string        `gorm:"size:20;not null" json:"shortName"`
	TargetAge     string        `gorm:"size:20" json:"targetAge"` // e.g. "Birth", "6 Weeks"
	DueDate       time.Time     `gorm:"not null" json:"dueDate"`
	Status        VaccineStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	CompletedDate *time.Time    `json:"completedDate,omitempty"`
	ProviderID    string        `gorm:"size:100" json:"providerId,omitempty"`
	BatchNumber   string        `gorm:"size:100" json:"batchNumber,omitempty"`
}
