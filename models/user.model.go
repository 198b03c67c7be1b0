package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `gorm:"unique;not null" json:"email,omitempty"`
	Password  string `json:"-"`
	Image     string `json:"image"`
	Role      string `gorm:"default:'USER'" json:"role,omitempty"` // USER, INSTRUCTOR, ADMIN
	IsDeleted bool   `gorm:"default:false" json:"-"`

	// Courses the user is enrolled in. Shares the user_courses join table with
	// Course.StudentsEnrolled, so enrollment is a single relation with set semantics.
	Courses []Course `gorm:"many2many:user_courses" json:"courses,omitempty"`
}
