package models

import (
	"time"
)

// Baby represents a registered infant and owns its vaccine dose list.
type Baby struct {
	BaseModel
	FirstName        string    `gorm:"size:100;not null" json:"firstName"`
	LastName         string    `gorm:"size:100;not null" json:"lastName"`
	DateOfBirth      time.Time `gorm:"not null" json:"dateOfBirth"`
	Gender           string    `gorm:"size:1" json:"gender"` // "M" or "F"
	ParentName       string    `gorm:"size:255" json:"parentName"`
	ParentPhone      string    `gorm:"size:50" json:"parentPhone"`
	Village          string    `gorm:"size:255;index" json:"village"`
	RegistrationDate time.Time `json:"registrationDate"`
	QRCode           string    `gorm:"size:64" json:"qrCode"` // matches the baby ID for scan lookup
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	RegisteredByID   string    `gorm:"size:36;index" json:"registeredById"`

	// Relations
	Vaccines      []VaccineRecord `gorm:"foreignKey:BabyID" json:"vaccines,omitempty"`
	WeightHistory []GrowthPoint   `gorm:"foreignKey:BabyID" json:"weightHistory,omitempty"`
	RegisteredBy  User            `gorm:"foreignKey:RegisteredByID" json:"-"`
}

// GrowthPoint represents a single weight measurement for the growth chart.
type GrowthPoint struct {
	BaseModel
	BabyID       string    `gorm:"size:36;index" json:"babyId"`
	AgeMonths    float64   `json:"ageMonths"`
	WeightKg     float64   `json:"weightKg"`
	RecordedDate time.Time `json:"date"`
}
