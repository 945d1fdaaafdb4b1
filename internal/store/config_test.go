package store

import (
	"testing"
)

func TestSiteConfig_MaterializesDefaults(t *testing.T) {
	st := newTestStorage(t)

	cfg := st.SiteConfig()
	if len(cfg.AdminEmails) == 0 {
		t.Error("expected default admin email")
	}
	if cfg.Socials == nil || cfg.Messaging == nil {
		t.Error("expected non-nil maps in defaults")
	}

	// defaults must have been persisted on first access
	again := st.SiteConfig()
	if len(again.AdminEmails) != len(cfg.AdminEmails) {
		t.Error("expected persisted defaults on second read")
	}
}

func TestAddAdminEmail_Idempotent(t *testing.T) {
	st := newTestStorage(t)

	st.AddAdminEmail("x@y.com")
	st.AddAdminEmail("x@y.com")

	count := 0
	for _, e := range st.SiteConfig().AdminEmails {
		if e == "x@y.com" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one occurrence, got %d", count)
	}
}

func TestRemoveAdminEmail(t *testing.T) {
	st := newTestStorage(t)

	st.AddAdminEmail("x@y.com")
	st.RemoveAdminEmail("x@y.com")
	for _, e := range st.SiteConfig().AdminEmails {
		if e == "x@y.com" {
			t.Error("expected email removed")
		}
	}

	// removing an absent email is a no-op
	st.RemoveAdminEmail("never@there.com")
}

func TestUpdateSocial(t *testing.T) {
	st := newTestStorage(t)

	st.UpdateSocial("instagram", "https://instagram.com/nona")
	if got := st.SiteConfig().Socials["instagram"]; got != "https://instagram.com/nona" {
		t.Errorf("unexpected social value: %q", got)
	}
	// untouched channels keep their defaults
	if _, exists := st.SiteConfig().Socials["facebook"]; !exists {
		t.Error("expected default channels preserved")
	}
}

func TestUpdateMessagingCredentials_ShallowMerge(t *testing.T) {
	st := newTestStorage(t)

	st.UpdateMessagingCredentials(map[string]string{"smtp_host": "mail.example.com"})
	st.UpdateMessagingCredentials(map[string]string{"smtp_port": "2525"})

	creds := st.SiteConfig().Messaging
	if creds["smtp_host"] != "mail.example.com" || creds["smtp_port"] != "2525" {
		t.Errorf("expected merged credentials, got %v", creds)
	}
}

func TestSaveSiteConfig_StripsSecrets(t *testing.T) {
	st := newTestStorage(t)

	cfg := st.SiteConfig()
	st.SaveSiteConfig(cfg)

	var raw map[string]interface{}
	if !st.Get("nonaBeautyConfig", &raw) {
		t.Fatal("expected config stored")
	}
	if _, exists := raw["password"]; exists {
		t.Error("sanitizer must keep password out of the config blob")
	}
}
