package models

import "gorm.io/gorm"

// RatingAndReview is a student's rating plus free-text review for a course
type RatingAndReview struct {
	gorm.Model
	UserID   uint   `json:"userId"`
	CourseID uint   `json:"courseId"`
	Rating   uint   `json:"rating" gorm:"default:0"`
	Review   string `json:"review"`
}
