package models

import "time"

type AdoptionStatus string
type ApplicationStatus string

const (
	AdoptionStatusAvailable AdoptionStatus = "available"
	AdoptionStatusAdopted   AdoptionStatus = "adopted"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type Adoption struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PublisherID  uint           `gorm:"index;not null" json:"publisher_id"`
	Publisher    User           `gorm:"foreignKey:PublisherID" json:"publisher"`
	Name         string         `gorm:"not null" json:"name"`
	Species      string         `gorm:"index;not null" json:"species"`
	Breed        string         `json:"breed"`
	Age          int            `json:"age"`
	Gender       string         `gorm:"type:VARCHAR(20);default:'unknown'" json:"gender"`
	Color        string         `json:"color"`
	Location     string         `json:"location"`
	HealthStatus string         `json:"health_status"`
	Vaccinated   bool           `gorm:"default:false" json:"vaccinated"`
	Description  string         `json:"description"`
	Photos       PhotoList      `gorm:"type:text" json:"photos"`
	ContactPhone string         `json:"contact_phone"`
	Status       AdoptionStatus `gorm:"type:VARCHAR(20);default:'available'" json:"status"`
	Views        int            `gorm:"default:0" json:"views"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// AdoptionApplication is unique per (adoption, applicant); a user cannot
// apply for the same animal twice.
type AdoptionApplication struct {
	ID           uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	AdoptionID   uint              `gorm:"uniqueIndex:idx_app_adoption_applicant;not null" json:"adoption_id"`
	Adoption     Adoption          `gorm:"foreignKey:AdoptionID" json:"adoption"`
	ApplicantID  uint              `gorm:"uniqueIndex:idx_app_adoption_applicant;not null" json:"applicant_id"`
	Applicant    User              `gorm:"foreignKey:ApplicantID" json:"applicant"`
	Name         string            `gorm:"not null" json:"name"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	Experience   string            `json:"experience"`
	Reason       string            `json:"reason"`
	Status       ApplicationStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ReviewerNote string            `json:"reviewer_note"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
