package domain

// SiteConfig is the singleton settings record: admin emails, social
// channel links and third-party messaging credentials. Values are free
// strings, no format validation.
type SiteConfig struct {
	AdminEmails []string          `json:"adminEmails"`
	Socials     map[string]string `json:"socials"`
	Messaging   map[string]string `json:"messaging"`
}

// DefaultSiteConfig returns the record materialized on first access
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		AdminEmails: []string{"admin@nonabeauty.com"},
		Socials: map[string]string{
			"facebook":  "",
			"instagram": "",
			"tiktok":    "",
			"whatsapp":  "",
		},
		Messaging: map[string]string{},
	}
}

// UserProfile is the per-email record created lazily on first user login
type UserProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Session is the transient record of the current visitor's role. It is
// always carried explicitly; there is no package-level session state.
type Session struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s Session) IsAnonymous() bool {
	return s.Role == ""
}

// BackupData is the export/import envelope. On import every non-nil
// section fully replaces the matching store; absent sections are left
// untouched.
type BackupData struct {
	Config     *SiteConfig       `json:"config"`
	Products   []Product         `json:"products"`
	Offers     []Offer           `json:"offers"`
	Categories []Category        `json:"categories"`
	Images     map[string]string `json:"images"`
}
