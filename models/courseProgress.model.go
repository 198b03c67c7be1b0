package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseProgress tracks which videos of a course a user has completed.
// One record is created per enrollment event; the completed set starts empty.
type CourseProgress struct {
	gorm.Model
	CourseID        uint           `json:"courseId"`
	UserID          uint           `json:"userId"`
	CompletedVideos datatypes.JSON `json:"completedVideos"`
}
