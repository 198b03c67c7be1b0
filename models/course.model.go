package models

import "gorm.io/gorm"

const (
	CourseStatusDraft     = "Draft"
	CourseStatusPublished = "Published"
)

// Course represents a learning course
type Course struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"default:0"`
	Status      string  `json:"status" gorm:"default:'Draft'"` // Draft, Published
	CategoryID  uint    `json:"categoryId"`
	IsDeleted   bool    `gorm:"default:false" json:"-"`

	InstructorID uint `json:"instructorId"`
	Instructor   User `json:"instructor,omitempty"`

	// Enrolled students. Backed by the user_courses join table, so a user can
	// appear at most once per course.
	StudentsEnrolled []User `gorm:"many2many:user_courses" json:"studentsEnrolled,omitempty"`

	RatingAndReviews []RatingAndReview `json:"ratingAndReviews,omitempty"`
}
