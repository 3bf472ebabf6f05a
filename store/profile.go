package store

import "edumaster/models"

var defaultProfile = models.Profile{
	Name:  "EduMaster User",
	Email: "user@edumaster.local",
	Phone: "55 1234 5678",
	Bio:   "Passionate about lifelong learning.",
}

func (s *Store) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile replaces the profile record wholesale.
func (s *Store) UpdateProfile(p models.Profile) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	return s.profile
}
