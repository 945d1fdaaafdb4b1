package store

import (
	"github.com/nonabeauty/storeadmin/internal/domain"
)

func profileKey(email string) string {
	return domain.KeyProfilePrefix + email
}

func (s *Storage) Profile(email string) (*domain.UserProfile, bool) {
	p := &domain.UserProfile{}
	if !s.Get(profileKey(email), p) {
		return nil, false
	}
	return p, true
}

func (s *Storage) SaveProfile(p *domain.UserProfile) {
	s.Set(profileKey(p.Email), p)
}

// EnsureProfile creates an empty profile record for the email when none
// exists yet; an existing record is never overwritten.
func (s *Storage) EnsureProfile(email string) {
	if _, exists := s.Profile(email); !exists {
		s.SaveProfile(&domain.UserProfile{Email: email})
	}
}
