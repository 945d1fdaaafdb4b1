package adminapi

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nonabeauty/storeadmin/internal/domain"
	"github.com/nonabeauty/storeadmin/internal/webserver"
)

func registerAuthRoutes() {
	webserver.PubPOST("/auth/login", login)
	webserver.PubPOST("/auth/logout", logout)
	webserver.ApiGET("/session", getSession)
	webserver.ApiPOST("/auth/password", changeAdminPassword)
	webserver.ApiPOST("/token", issueToken)
}

type loginPayload struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login request", err.Error())
	}

	res := GetApp(c).Auth().Login(payload.Role, payload.Email, payload.Password)
	if !res.OK {
		return fail(c, http.StatusUnauthorized, "LOGIN_REJECTED", res.Reason, nil)
	}

	webserver.SetSession(c, domain.Session{Role: res.Role, Email: res.Email})
	zap.L().Info("login", zap.String("role", res.Role), zap.String("email", res.Email))
	return ok(c, res)
}

func logout(c echo.Context) error {
	GetApp(c).Auth().Logout()
	webserver.ClearSession(c)
	return ok(c, map[string]interface{}{"ok": true})
}

func getSession(c echo.Context) error {
	return ok(c, webserver.CurrentSession(c))
}

func changeAdminPassword(c echo.Context) error {
	var payload struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	if err := GetApp(c).Auth().ChangeAdminPassword(payload.Password); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_PASSWORD", err.Error(), nil)
	}
	zap.L().Info("admin credential changed")
	return ok(c, map[string]interface{}{"changed": true})
}

// issueToken mints a bearer token for machine clients, signed with the
// same secret the session cookies use. Requires an admin session.
func issueToken(c echo.Context) error {
	sess := webserver.CurrentSession(c)
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":  domain.RoleAdmin,
		"email": sess.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(GetApp(c).Config().Web.Secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_FAILED", "Failed to sign token", err.Error())
	}
	return ok(c, map[string]interface{}{"token": signed})
}
