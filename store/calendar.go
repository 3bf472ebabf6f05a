package store

import (
	"time"

	"edumaster/models"
)

// CombineDateTime builds a session start from the scheduling form's separate
// date and clock fields, in the server's local zone.
func CombineDateTime(day, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", day+" "+clock, time.Local)
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date     time.Time        `json:"date"`
	InMonth  bool             `json:"inMonth"`
	Today    bool             `json:"today"`
	Sessions []models.Session `json:"sessions"`
}

// SessionsForDay filters sessions by same-calendar-day comparison on their
// start timestamp.
func (s *Store) SessionsForDay(day time.Time) []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionsForDayLocked(day)
}

func (s *Store) sessionsForDayLocked(day time.Time) []models.Session {
	var out []models.Session
	for _, sess := range s.sessions {
		if sameDay(sess.StartDate, day) {
			out = append(out, sess)
		}
	}
	return out
}

// MonthGrid lays out the month as full weeks, Sunday through Saturday,
// padding with the surrounding months' days the way a wall calendar does.
func (s *Store) MonthGrid(year int, month time.Month) [][]CalendarDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, int(time.Saturday-monthEnd.Weekday()))

	now := time.Now()
	var weeks [][]CalendarDay
	var week []CalendarDay
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		week = append(week, CalendarDay{
			Date:     day,
			InMonth:  day.Month() == month,
			Today:    sameDay(day, now),
			Sessions: s.sessionsForDayLocked(day),
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = nil
		}
	}
	return weeks
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
