package models

import "gorm.io/gorm"

// Category groups courses for the catalog pages
type Category struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	Courses []Course `json:"courses"`
}
