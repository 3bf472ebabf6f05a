package models

const (
	CourseActive   = "active"
	CourseInactive = "inactive"
)

type Course struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Instructor  string  `json:"instructor"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"` // display string, e.g. "20 hours"
	Image       string  `json:"image"`
	Status      string  `json:"status" gorm:"default:'active'"`
}

// TableName sets the table name for GORM
func (Course) TableName() string {
	return "courses"
}
