package store

import (
	"github.com/nonabeauty/storeadmin/internal/domain"
)

// SiteConfig returns the singleton settings record, materializing and
// persisting the defaults on first access.
func (s *Storage) SiteConfig() *domain.SiteConfig {
	cfg := &domain.SiteConfig{}
	if !s.Get(domain.KeySiteConfig, cfg) {
		cfg = domain.DefaultSiteConfig()
		s.SaveSiteConfig(cfg)
		return cfg
	}
	if cfg.Socials == nil {
		cfg.Socials = map[string]string{}
	}
	if cfg.Messaging == nil {
		cfg.Messaging = map[string]string{}
	}
	return cfg
}

// SaveSiteConfig persists through the sanitizing setter; a config blob
// must never carry password or token fields into the store.
func (s *Storage) SaveSiteConfig(cfg *domain.SiteConfig) {
	s.SetSanitized(domain.KeySiteConfig, cfg)
}

// AddAdminEmail inserts the email unless already present (exact string
// identity). Idempotent.
func (s *Storage) AddAdminEmail(email string) {
	cfg := s.SiteConfig()
	for _, e := range cfg.AdminEmails {
		if e == email {
			return
		}
	}
	cfg.AdminEmails = append(cfg.AdminEmails, email)
	s.SaveSiteConfig(cfg)
}

func (s *Storage) RemoveAdminEmail(email string) {
	cfg := s.SiteConfig()
	next := make([]string, 0, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		if e != email {
			next = append(next, e)
		}
	}
	cfg.AdminEmails = next
	s.SaveSiteConfig(cfg)
}

func (s *Storage) UpdateSocial(key, value string) {
	cfg := s.SiteConfig()
	cfg.Socials[key] = value
	s.SaveSiteConfig(cfg)
}

// UpdateMessagingCredentials shallow-merges creds into the stored map
func (s *Storage) UpdateMessagingCredentials(creds map[string]string) {
	cfg := s.SiteConfig()
	for k, v := range creds {
		cfg.Messaging[k] = v
	}
	s.SaveSiteConfig(cfg)
}
