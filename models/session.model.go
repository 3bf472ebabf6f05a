package models

import "time"

// Session is a dated occurrence of a course with finite capacity.
// The remote store keeps the timestamps in snake_case columns.
type Session struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	CourseID      string    `json:"courseId" gorm:"column:course_id;index;not null"`
	StartDate     time.Time `json:"startDate" gorm:"column:start_date"`
	EndDate       time.Time `json:"endDate" gorm:"column:end_date"`
	Capacity      int       `json:"capacity"`
	EnrolledCount int       `json:"enrolledCount" gorm:"column:enrolled_count;default:0"`
}

// TableName sets the table name for GORM
func (Session) TableName() string {
	return "sessions"
}
