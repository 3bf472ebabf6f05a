package mirror

import (
	"fmt"
	"strings"
	"time"

	"edumaster/models"

	"github.com/go-resty/resty/v2"
)

// Supabase talks to the PostgREST endpoint of a Supabase project. Inserts use
// Prefer: return=representation so the database-assigned row comes back.
type Supabase struct {
	client *resty.Client
}

func NewSupabase(projectURL, anonKey string) *Supabase {
	client := resty.New().
		SetBaseURL(strings.TrimRight(projectURL, "/") + "/rest/v1").
		SetHeader("apikey", anonKey).
		SetHeader("Authorization", "Bearer "+anonKey).
		SetHeader("Content-Type", "application/json")

	return &Supabase{client: client}
}

// supabaseSession round-trips the snake_case timestamp columns as ISO strings.
type supabaseSession struct {
	ID            string `json:"id,omitempty"`
	CourseID      string `json:"course_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Capacity      int    `json:"capacity"`
	EnrolledCount int    `json:"enrolled_count"`
}

type supabaseEnrollment struct {
	ID             string `json:"id,omitempty"`
	SessionID      string `json:"session_id"`
	StudentName    string `json:"student_name"`
	StudentEmail   string `json:"student_email"`
	StudentPhone   string `json:"student_phone"`
	EnrollmentDate string `json:"enrollment_date,omitempty"`
	Status         string `json:"status"`
}

func (s *Supabase) InsertCourse(course models.Course) (models.Course, error) {
	payload := map[string]interface{}{
		"title":       course.Title,
		"description": course.Description,
		"instructor":  course.Instructor,
		"price":       course.Price,
		"duration":    course.Duration,
		"image":       course.Image,
		"status":      course.Status,
	}

	var rows []models.Course
	resp, err := s.client.R().
		SetHeader("Prefer", "return=representation").
		SetBody([]map[string]interface{}{payload}).
		SetResult(&rows).
		Post("/courses")
	if err != nil {
		return models.Course{}, err
	}
	if resp.IsError() {
		return models.Course{}, fmt.Errorf("supabase insert course: %s", resp.Status())
	}
	if len(rows) == 0 {
		return models.Course{}, fmt.Errorf("supabase insert course: empty representation")
	}
	return rows[0], nil
}

func (s *Supabase) DeleteCourse(id string) error {
	resp, err := s.client.R().
		SetQueryParam("id", "eq."+id).
		Delete("/courses")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("supabase delete course: %s", resp.Status())
	}
	return nil
}

func (s *Supabase) InsertSession(session models.Session) error {
	payload := supabaseSession{
		ID:            session.ID,
		CourseID:      session.CourseID,
		StartDate:     session.StartDate.Format(time.RFC3339),
		EndDate:       session.EndDate.Format(time.RFC3339),
		Capacity:      session.Capacity,
		EnrolledCount: session.EnrolledCount,
	}

	resp, err := s.client.R().
		SetBody([]supabaseSession{payload}).
		Post("/sessions")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("supabase insert session: %s", resp.Status())
	}
	return nil
}

func (s *Supabase) InsertEnrollment(enrollment models.Enrollment) error {
	payload := supabaseEnrollment{
		ID:             enrollment.ID,
		SessionID:      enrollment.SessionID,
		StudentName:    enrollment.StudentName,
		StudentEmail:   enrollment.StudentEmail,
		StudentPhone:   enrollment.StudentPhone,
		EnrollmentDate: enrollment.EnrollmentDate.Format(time.RFC3339),
		Status:         enrollment.Status,
	}

	resp, err := s.client.R().
		SetBody([]supabaseEnrollment{payload}).
		Post("/enrollments")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("supabase insert enrollment: %s", resp.Status())
	}
	return nil
}

func (s *Supabase) SelectCourses() ([]models.Course, error) {
	var rows []models.Course
	resp, err := s.client.R().
		SetQueryParam("select", "*").
		SetResult(&rows).
		Get("/courses")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("supabase select courses: %s", resp.Status())
	}
	return rows, nil
}

func (s *Supabase) SelectSessions() ([]models.Session, error) {
	var rows []supabaseSession
	resp, err := s.client.R().
		SetQueryParam("select", "*").
		SetResult(&rows).
		Get("/sessions")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("supabase select sessions: %s", resp.Status())
	}

	sessions := make([]models.Session, 0, len(rows))
	for _, r := range rows {
		start, err := parseTimestamp(r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("supabase session %s: %w", r.ID, err)
		}
		end, err := parseTimestamp(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("supabase session %s: %w", r.ID, err)
		}
		sessions = append(sessions, models.Session{
			ID:            r.ID,
			CourseID:      r.CourseID,
			StartDate:     start,
			EndDate:       end,
			Capacity:      r.Capacity,
			EnrolledCount: r.EnrolledCount,
		})
	}
	return sessions, nil
}

func (s *Supabase) SelectEnrollments() ([]models.Enrollment, error) {
	var rows []supabaseEnrollment
	resp, err := s.client.R().
		SetQueryParam("select", "*").
		SetResult(&rows).
		Get("/enrollments")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("supabase select enrollments: %s", resp.Status())
	}

	enrollments := make([]models.Enrollment, 0, len(rows))
	for _, r := range rows {
		date := time.Time{}
		if r.EnrollmentDate != "" {
			parsed, err := parseTimestamp(r.EnrollmentDate)
			if err != nil {
				return nil, fmt.Errorf("supabase enrollment %s: %w", r.ID, err)
			}
			date = parsed
		}
		enrollments = append(enrollments, models.Enrollment{
			ID:             r.ID,
			SessionID:      r.SessionID,
			StudentName:    r.StudentName,
			StudentEmail:   r.StudentEmail,
			StudentPhone:   r.StudentPhone,
			EnrollmentDate: date,
			Status:         r.Status,
		})
	}
	return enrollments, nil
}

// parseTimestamp accepts both the timezone-aware and the bare timestamp
// formats PostgREST emits depending on the column type.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
	}
	return t, nil
}
