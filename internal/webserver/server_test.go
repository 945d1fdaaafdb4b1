package webserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/nonabeauty/storeadmin/config"
	"github.com/nonabeauty/storeadmin/internal/domain"
)

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.Web.AssetsDir = ""
	ws := Init(cfg, nil)

	ws.root.GET("/admin/dashboard.html", func(c echo.Context) error {
		return c.String(http.StatusOK, "dashboard")
	})
	// grants an admin cookie session, standing in for the login handler
	ws.root.POST("/grant", func(c echo.Context) error {
		SetSession(c, domain.Session{Role: domain.RoleAdmin, Email: "admin@nonabeauty.com"})
		return c.NoContent(http.StatusOK)
	})
	ApiGET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	return ws
}

func adminCookies(t *testing.T, ws *WebServer) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/grant", nil)
	rec := httptest.NewRecorder()
	ws.root.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("grant failed: %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}
	return cookies
}

func TestPageGate_RedirectsAnonymous(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard.html", nil)
	rec := httptest.NewRecorder()
	ws.root.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302 for anonymous admin page, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login.html" {
		t.Errorf("expected redirect to /login.html, got %q", loc)
	}
}

func TestPageGate_AllowBypass(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard.html?allow=1", nil)
	rec := httptest.NewRecorder()
	ws.root.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected allow=1 to reach the page, got %d", rec.Code)
	}
}

func TestPageGate_AdmitsAdminSession(t *testing.T) {
	ws := newTestServer(t)
	cookies := adminCookies(t, ws)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard.html", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	ws.root.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected admin session to reach the page, got %d", rec.Code)
	}
}

func TestApiAuth_AnonymousRejected(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/ping", nil)
	rec := httptest.NewRecorder()
	ws.root.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		t.Fatalf("anonymous request must not reach the api, got %d", rec.Code)
	}
	if rec.Code == http.StatusFound {
		t.Error("api routes must reject, not redirect")
	}
}

func TestApiAuth_CookieSessionAdmitted(t *testing.T) {
	ws := newTestServer(t)
	cookies := adminCookies(t, ws)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/ping", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	ws.root.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected admin cookie admitted, got %d", rec.Code)
	}
	if rec.Body.String() != "pong" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestApiAuth_BearerTokenAdmitted(t *testing.T) {
	ws := newTestServer(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": domain.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(ws.cfg.Web.Secret))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/api/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	ws.root.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected bearer token admitted, got %d", rec.Code)
	}
}

func TestShutdown_DrainsAndStops(t *testing.T) {
	cfg := config.DefaultAppConfig()
	cfg.Web.Host = "127.0.0.1"
	cfg.Web.Port = 0
	ws := Init(cfg, nil)

	done := make(chan error, 1)
	go func() { done <- ws.Listen() }()
	time.Sleep(100 * time.Millisecond)

	ws.Shutdown()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("unexpected listen error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}
