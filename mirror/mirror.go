package mirror

import (
	"errors"
	"log"

	"edumaster/config"
	"edumaster/database"
	"edumaster/models"
)

// ErrNotConfigured is returned by store hydration when no mirror exists.
var ErrNotConfigured = errors.New("no remote mirror configured")

// Mirror is the optional remote table store consulted best-effort by every
// mutation. Only the course insert round-trips the canonical record; session
// and enrollment inserts are fire-and-check.
type Mirror interface {
	InsertCourse(course models.Course) (models.Course, error)
	DeleteCourse(id string) error
	InsertSession(session models.Session) error
	InsertEnrollment(enrollment models.Enrollment) error

	SelectCourses() ([]models.Course, error)
	SelectSessions() ([]models.Session, error)
	SelectEnrollments() ([]models.Enrollment, error)
}

// FromConfig picks a mirror backend from the loaded configuration. A nil
// return means every operation runs local-only, silently.
func FromConfig() Mirror {
	cfg := config.AppConfig

	if cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "" {
		log.Println("Using Supabase REST mirror:", cfg.SupabaseURL)
		return NewSupabase(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	}

	if cfg.DBHost != "" {
		db, err := database.Connect()
		if err != nil {
			// Unreachable mirror downgrades to local-only, never surfaced.
			log.Printf("Warning: remote store unreachable (%v). Running local-only.", err)
			return nil
		}
		log.Println("Using PostgreSQL mirror:", cfg.DBHost)
		return NewPostgres(db)
	}

	return nil
}
