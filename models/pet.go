package models

import "time"

type Pet struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Species     string    `gorm:"not null" json:"species"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Gender      string    `gorm:"type:VARCHAR(20);default:'unknown'" json:"gender"`
	Color       string    `json:"color"`
	Weight      float64   `json:"weight"`
	OwnerName   string    `json:"owner_name"`
	OwnerPhone  string    `json:"owner_phone"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
