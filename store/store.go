package store

import (
	"sync"
	"time"

	"edumaster/mirror"
	"edumaster/models"

	"github.com/google/uuid"
)

// SessionDuration is the fixed length of every scheduled session.
const SessionDuration = 2 * time.Hour

// Store owns the three collections and the derived enrolledCount invariant.
// Courses keep reverse-insertion order (newest first), sessions keep
// insertion order. Every mutation consults the optional remote mirror before
// deciding whether the local write stands.
type Store struct {
	mu sync.Mutex

	courses     []models.Course
	sessions    []models.Session
	enrollments []models.Enrollment
	profile     models.Profile

	mirror mirror.Mirror
}

// Data is the application-wide store instance, set by Init.
var Data *Store

func Init(m mirror.Mirror) {
	Data = New(m)
}

func New(m mirror.Mirror) *Store {
	return &Store{
		mirror:  m,
		profile: defaultProfile,
	}
}

// mirrorWrite routes a mutation's mirror call through one policy point. The
// abortOnFailure flag is the only thing that differs between the four
// mutations: course creation keeps its local write when the mirror errors,
// everything else gives up.
func (s *Store) mirrorWrite(abortOnFailure bool, call func(m mirror.Mirror) error) MutationResult {
	if s.mirror == nil {
		return appliedLocalOnly(nil)
	}
	if err := call(s.mirror); err != nil {
		if abortOnFailure {
			return rejected(err)
		}
		return appliedLocalOnly(err)
	}
	return applied()
}

// CourseInput carries a course record lacking an id.
type CourseInput struct {
	Title       string
	Description string
	Instructor  string
	Price       float64
	Duration    string
	Image       string
	Status      string
}

// AddCourse assigns an id and prepends the course. The mirror insert runs
// first; when it succeeds the canonical row returned by the remote store
// replaces the locally-built one. Mirror failure is swallowed and the local
// copy stands.
func (s *Store) AddCourse(input CourseInput) (models.Course, MutationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = models.CourseActive
	}

	course := models.Course{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Instructor:  input.Instructor,
		Price:       input.Price,
		Duration:    input.Duration,
		Image:       input.Image,
		Status:      status,
	}

	res := s.mirrorWrite(false, func(m mirror.Mirror) error {
		stored, err := m.InsertCourse(course)
		if err != nil {
			return err
		}
		course = stored
		return nil
	})

	s.courses = append([]models.Course{course}, s.courses...)
	return course, res
}

// DeleteCourse removes the course and cascades to its sessions. Enrollments
// referencing a removed session are marked cancelled. This is the one path
// where a mirror error blocks the local mutation entirely. An unknown id is
// a filtering no-op, not an error.
func (s *Store) DeleteCourse(id string) MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.mirrorWrite(true, func(m mirror.Mirror) error {
		return m.DeleteCourse(id)
	})
	if res.Outcome == Rejected {
		return res
	}

	kept := s.courses[:0]
	for _, c := range s.courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.courses = kept

	removed := make(map[string]bool)
	keptSessions := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.CourseID == id {
			removed[sess.ID] = true
			continue
		}
		keptSessions = append(keptSessions, sess)
	}
	s.sessions = keptSessions

	for i := range s.enrollments {
		if removed[s.enrollments[i].SessionID] {
			s.enrollments[i].Status = models.EnrollmentCancelled
		}
	}

	return res
}

// ScheduleSession creates a session running exactly SessionDuration from the
// given start. The course id is taken on faith, matching the scheduling form.
// Sessions are appended, unlike courses. A mirror error aborts the insert.
func (s *Store) ScheduleSession(courseID string, start time.Time, capacity int) (models.Session, MutationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.Session{
		ID:            uuid.NewString(),
		CourseID:      courseID,
		StartDate:     start,
		EndDate:       start.Add(SessionDuration),
		Capacity:      capacity,
		EnrolledCount: 0,
	}

	res := s.mirrorWrite(true, func(m mirror.Mirror) error {
		return m.InsertSession(session)
	})
	if res.Outcome == Rejected {
		return models.Session{}, res
	}

	s.sessions = append(s.sessions, session)
	return session, res
}

// Enroll records a confirmed enrollment and increments the owning session's
// counter. A full session is rejected here rather than trusting the caller
// to have filtered it out. A mirror error aborts the enrollment.
func (s *Store) Enroll(sessionID, name, email, phone string) (models.Enrollment, MutationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Enrollment{}, rejected(ErrSessionNotFound)
	}
	if s.sessions[idx].EnrolledCount >= s.sessions[idx].Capacity {
		return models.Enrollment{}, rejected(ErrSessionFull)
	}

	enrollment := models.Enrollment{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		StudentName:    name,
		StudentEmail:   email,
		StudentPhone:   phone,
		EnrollmentDate: time.Now(),
		Status:         models.EnrollmentConfirmed,
	}

	res := s.mirrorWrite(true, func(m mirror.Mirror) error {
		return m.InsertEnrollment(enrollment)
	})
	if res.Outcome == Rejected {
		return models.Enrollment{}, res
	}

	s.enrollments = append([]models.Enrollment{enrollment}, s.enrollments...)
	s.sessions[idx].EnrolledCount++
	return enrollment, res
}

// Courses returns the course collection, newest first.
func (s *Store) Courses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

func (s *Store) Sessions() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

func (s *Store) Enrollments() []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Enrollment, len(s.enrollments))
	copy(out, s.enrollments)
	return out
}

func (s *Store) CourseByID(id string) (models.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

func (s *Store) SessionByID(id string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return models.Session{}, false
}

// EnrollmentsForSession returns the roster for one session in natural
// collection order.
func (s *Store) EnrollmentsForSession(sessionID string) []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Enrollment
	for _, e := range s.enrollments {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out
}

// Hydrate replaces the collections with the mirror's contents. When a mirror
// is configured it is authoritative: whatever was seeded locally is
// discarded, never merged.
func (s *Store) Hydrate() error {
	if s.mirror == nil {
		return mirror.ErrNotConfigured
	}

	courses, err := s.mirror.SelectCourses()
	if err != nil {
		return err
	}
	sessions, err := s.mirror.SelectSessions()
	if err != nil {
		return err
	}
	enrollments, err := s.mirror.SelectEnrollments()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = courses
	s.sessions = sessions
	s.enrollments = enrollments
	return nil
}

// Drift is one session whose counter disagrees with its confirmed
// enrollments.
type Drift struct {
	SessionID string
	Counter   int
	Confirmed int
}

// Reconcile recomputes each session's enrolledCount from the enrollment
// records and reports mismatches. It is a check, not a repair: the counter
// is left as written so drift stays visible.
func (s *Store) Reconcile() []Drift {
	s.mu.Lock()
	defer s.mu.Unlock()

	confirmed := make(map[string]int)
	for _, e := range s.enrollments {
		if e.Status == models.EnrollmentConfirmed {
			confirmed[e.SessionID]++
		}
	}

	var drift []Drift
	for _, sess := range s.sessions {
		if sess.EnrolledCount != confirmed[sess.ID] {
			drift = append(drift, Drift{
				SessionID: sess.ID,
				Counter:   sess.EnrolledCount,
				Confirmed: confirmed[sess.ID],
			})
		}
	}
	return drift
}
