package app

import (
	"go.uber.org/zap"
)

// checkAdminCredential seeds the default admin credential hash when
// none is stored yet.
func (a *Application) checkAdminCredential() {
	a.authMgr.EnsureAdminPassword()
}

// checkSiteConfig materializes the default settings record on first
// boot so the console never sees a missing singleton.
func (a *Application) checkSiteConfig() {
	cfg := a.storage.SiteConfig()
	zap.L().Info("site config loaded",
		zap.Int("adminEmails", len(cfg.AdminEmails)),
		zap.Int("socials", len(cfg.Socials)))

	// collections materialize lazily; touching them here just makes the
	// first admin page load cheap and logs the dataset size at boot
	zap.L().Info("catalog loaded",
		zap.Int("products", len(a.storage.Products())),
		zap.Int("offers", len(a.storage.Offers())),
		zap.Int("categories", len(a.storage.Categories())),
		zap.Int("images", len(a.storage.Images())))
}
