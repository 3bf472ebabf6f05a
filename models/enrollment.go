package models

import "time"

const (
	EnrollmentConfirmed = "confirmed"
	EnrollmentCancelled = "cancelled"
)

type Enrollment struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	SessionID      string    `json:"sessionId" gorm:"column:session_id;index;not null"`
	StudentName    string    `json:"studentName" gorm:"column:student_name"`
	StudentEmail   string    `json:"studentEmail" gorm:"column:student_email"`
	StudentPhone   string    `json:"studentPhone" gorm:"column:student_phone"`
	EnrollmentDate time.Time `json:"enrollmentDate" gorm:"column:enrollment_date"`
	Status         string    `json:"status" gorm:"default:'confirmed'"`
}

// TableName sets the table name for GORM
func (Enrollment) TableName() string {
	return "enrollments"
}
