package store

import (
	"time"

	"edumaster/models"
)

// Seed loads the built-in demo catalog. It is used only when no remote
// mirror is configured; hydration from a mirror discards it entirely.
// Sessions land in the current month so the calendar has something to show.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	year, month := now.Year(), now.Month()
	day := func(d, hour int) time.Time {
		return time.Date(year, month, d, hour, 0, 0, 0, time.Local)
	}

	s.courses = []models.Course{
		{
			ID:          "1",
			Title:       "Digital Photography Basics",
			Description: "Learn the fundamentals of digital photography, from camera handling to basic composition.",
			Instructor:  "Marco Polo",
			Price:       150,
			Duration:    "20 hours",
			Image:       "https://picsum.photos/seed/photo/800/600",
			Status:      models.CourseActive,
		},
		{
			ID:          "2",
			Title:       "Advanced Digital Marketing",
			Description: "Advanced SEO, SEM and social media strategies for growing businesses.",
			Instructor:  "Lucia Fernandez",
			Price:       299,
			Duration:    "40 hours",
			Image:       "https://picsum.photos/seed/marketing/800/600",
			Status:      models.CourseActive,
		},
		{
			ID:          "3",
			Title:       "Introduction to Python",
			Description: "Start your programming career with the most versatile and popular language around.",
			Instructor:  "Alan Turing Jr.",
			Price:       199,
			Duration:    "30 hours",
			Image:       "https://picsum.photos/seed/python/800/600",
			Status:      models.CourseActive,
		},
		{
			ID:          "4",
			Title:       "Traditional Italian Cooking",
			Description: "Master the art of fresh pasta and Nonna's classic sauces.",
			Instructor:  "Giuseppe Rossi",
			Price:       85,
			Duration:    "8 hours",
			Image:       "https://picsum.photos/seed/cooking/800/600",
			Status:      models.CourseActive,
		},
	}

	s.sessions = []models.Session{
		{ID: "s1", CourseID: "1", StartDate: day(14, 10), EndDate: day(14, 13), Capacity: 15, EnrolledCount: 5},
		{ID: "s2", CourseID: "3", StartDate: day(16, 18), EndDate: day(16, 21), Capacity: 20, EnrolledCount: 18},
		{ID: "s3", CourseID: "4", StartDate: day(22, 17), EndDate: day(22, 20), Capacity: 10, EnrolledCount: 10},
		{ID: "s4", CourseID: "2", StartDate: day(5, 9), EndDate: day(5, 12), Capacity: 25, EnrolledCount: 12},
		{ID: "s5", CourseID: "1", StartDate: day(10, 15), EndDate: day(10, 18), Capacity: 15, EnrolledCount: 14},
		{ID: "s6", CourseID: "3", StartDate: day(28, 10), EndDate: day(28, 13), Capacity: 20, EnrolledCount: 2},
	}

	s.enrollments = []models.Enrollment{
		{
			ID:             "e1",
			SessionID:      "s1",
			StudentName:    "Juan Perez",
			StudentEmail:   "juan@example.com",
			StudentPhone:   "123456789",
			EnrollmentDate: now,
			Status:         models.EnrollmentConfirmed,
		},
		{
			ID:             "e2",
			SessionID:      "s2",
			StudentName:    "Maria Garcia",
			StudentEmail:   "maria@example.com",
			StudentPhone:   "987654321",
			EnrollmentDate: now,
			Status:         models.EnrollmentConfirmed,
		},
	}
}
