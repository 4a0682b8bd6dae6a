package models

import (
	"time"
)

// OutreachVisitStatus represents the status of a follow-up visit
type OutreachVisitStatus string

const (
	VisitPlanned   OutreachVisitStatus = "PLANNED"
	VisitCompleted OutreachVisitStatus = "COMPLETED"
	VisitCancelled OutreachVisitStatus = "CANCELLED"
)

// OutreachVisit represents a scheduled follow-up for a baby with missed
// doses. Visits are created from the dashboard's outreach list and
// closed by the field team.
type OutreachVisit struct {
	BaseModel
	BabyID        string              `gorm:"size:36;index" json:"babyId"`
	AssigneeID    string              `gorm:"size:36;index" json:"assigneeId"`
	ScheduledDate time.Time           `json:"scheduledDate"`
	Status        OutreachVisitStatus `gorm:"size:20;default:'PLANNED'" json:"status"`
	Reason        string              `gorm:"size:255" json:"reason"`
	Notes         string              `gorm:"type:text" json:"notes"`

	// Relations
	Baby     Baby `gorm:"foreignKey:BabyID" json:"-"`
	Assignee User `gorm:"foreignKey:AssigneeID" json:"-"`
}
