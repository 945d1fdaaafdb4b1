package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nonabeauty/storeadmin/internal/mailer"
	"github.com/nonabeauty/storeadmin/internal/webserver"
)

func registerSettingsRoutes() {
	webserver.ApiGET("/settings", getSettings)
	webserver.ApiPOST("/settings/admins", addAdminEmail)
	webserver.ApiDELETE("/settings/admins/:email", removeAdminEmail)
	webserver.ApiPOST("/settings/socials", updateSocial)
	webserver.ApiPOST("/settings/messaging", updateMessaging)
	webserver.ApiPOST("/settings/messaging/test", testMessaging)
}

func getSettings(c echo.Context) error {
	return ok(c, GetStore(c).SiteConfig())
}

func addAdminEmail(c echo.Context) error {
	var payload struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" {
		return fail(c, http.StatusBadRequest, "MISSING_EMAIL", "Email is required", nil)
	}
	GetStore(c).AddAdminEmail(payload.Email)
	return ok(c, GetStore(c).SiteConfig())
}

func removeAdminEmail(c echo.Context) error {
	email := c.Param("email")
	GetStore(c).RemoveAdminEmail(email)
	return ok(c, GetStore(c).SiteConfig())
}

func updateSocial(c echo.Context) error {
	var payload struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	if payload.Key == "" {
		return fail(c, http.StatusBadRequest, "MISSING_KEY", "Social channel key is required", nil)
	}
	GetStore(c).UpdateSocial(payload.Key, payload.Value)
	return ok(c, GetStore(c).SiteConfig())
}

func updateMessaging(c echo.Context) error {
	var payload map[string]string
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	if len(payload) == 0 {
		return fail(c, http.StatusBadRequest, "MISSING_FIELDS", "At least one credential is required", nil)
	}
	GetStore(c).UpdateMessagingCredentials(payload)
	return ok(c, GetStore(c).SiteConfig())
}

// testMessaging sends a probe message with the stored credentials
func testMessaging(c echo.Context) error {
	var payload struct {
		To string `json:"to"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	creds := GetStore(c).SiteConfig().Messaging
	if err := mailer.SendTest(creds, payload.To); err != nil {
		zap.L().Warn("messaging test failed", zap.Error(err))
		return fail(c, http.StatusBadGateway, "SEND_FAILED", "Failed to send test message", err.Error())
	}
	return ok(c, map[string]interface{}{"sent": true})
}
