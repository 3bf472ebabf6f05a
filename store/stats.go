package store

import "edumaster/models"

// HighOccupancyThreshold flags sessions that need operational attention.
const HighOccupancyThreshold = 0.8

// OccupancyRatio is enrolledCount over capacity. A zero-capacity session
// never occurs through ScheduleSession, but hydrated data is not trusted.
func OccupancyRatio(session models.Session) float64 {
	if session.Capacity <= 0 {
		return 0
	}
	return float64(session.EnrolledCount) / float64(session.Capacity)
}

// NearCapacity reports whether a session crossed the attention threshold.
func NearCapacity(session models.Session) bool {
	return OccupancyRatio(session) >= HighOccupancyThreshold
}

// IsFull reports whether enrollment must be disabled for the session.
func IsFull(session models.Session) bool {
	return session.EnrolledCount >= session.Capacity
}

type DashboardStats struct {
	ActiveCourses    int     `json:"activeCourses"`
	TotalEnrollments int     `json:"totalEnrollments"`
	TotalRevenue     float64 `json:"totalRevenue"`
	PendingReviews   int     `json:"pendingReviews"`
}

// CourseOccupancy is one bar of the dashboard chart: seats taken and seats
// left across all of a course's sessions.
type CourseOccupancy struct {
	Course    string `json:"course"`
	Enrolled  int    `json:"enrolled"`
	Available int    `json:"available"`
}

// Stats aggregates the dashboard headline numbers. Revenue counts each
// confirmed enrollment at its course's price.
func (s *Store) Stats() DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := DashboardStats{}
	for _, c := range s.courses {
		if c.Status == models.CourseActive {
			stats.ActiveCourses++
		}
	}

	priceBySession := make(map[string]float64)
	for _, sess := range s.sessions {
		for _, c := range s.courses {
			if c.ID == sess.CourseID {
				priceBySession[sess.ID] = c.Price
				break
			}
		}
	}

	for _, e := range s.enrollments {
		if e.Status != models.EnrollmentConfirmed {
			continue
		}
		stats.TotalEnrollments++
		stats.TotalRevenue += priceBySession[e.SessionID]
	}
	return stats
}

// OccupancyChart returns one row per course, in course collection order.
func (s *Store) OccupancyChart() []CourseOccupancy {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]CourseOccupancy, 0, len(s.courses))
	for _, c := range s.courses {
		row := CourseOccupancy{Course: c.Title}
		for _, sess := range s.sessions {
			if sess.CourseID == c.ID {
				row.Enrolled += sess.EnrolledCount
				row.Available += sess.Capacity - sess.EnrolledCount
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// HighOccupancySessions lists sessions at or above the attention threshold.
func (s *Store) HighOccupancySessions() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Session
	for _, sess := range s.sessions {
		if NearCapacity(sess) {
			out = append(out, sess)
		}
	}
	return out
}
