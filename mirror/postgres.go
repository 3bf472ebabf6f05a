package mirror

import (
	"edumaster/models"

	"gorm.io/gorm"
)

// Postgres mirrors the three collections into plain tables over GORM.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) InsertCourse(course models.Course) (models.Course, error) {
	if err := p.db.Create(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (p *Postgres) DeleteCourse(id string) error {
	return p.db.Where("id = ?", id).Delete(&models.Course{}).Error
}

func (p *Postgres) InsertSession(session models.Session) error {
	return p.db.Create(&session).Error
}

func (p *Postgres) InsertEnrollment(enrollment models.Enrollment) error {
	return p.db.Create(&enrollment).Error
}

func (p *Postgres) SelectCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := p.db.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (p *Postgres) SelectSessions() ([]models.Session, error) {
	var sessions []models.Session
	if err := p.db.Order("start_date").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (p *Postgres) SelectEnrollments() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := p.db.Order("enrollment_date desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}
