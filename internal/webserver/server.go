package webserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/nonabeauty/storeadmin/config"
	"github.com/nonabeauty/storeadmin/internal/domain"
)

// AppContextKey is the echo context key under which the application
// container is injected for adminapi handlers.
const AppContextKey = "storeadmin.app"

const sessionName = "storeadmin_session"

const (
	sessionRoleKey  = "role"
	sessionEmailKey = "email"
)

type WebServer struct {
	root *echo.Echo
	api  *echo.Group
	cfg  *config.AppConfig
}

var server *WebServer

// Init builds the echo server: recovery, zap request logging, cookie
// sessions, the admin page gate and the authenticated /admin/api group.
// appctx is injected into every request context for the handlers.
func Init(cfg *config.AppConfig, appctx interface{}) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.Web.Secret))))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(AppContextKey, appctx)
			return next(c)
		}
	})
	e.Use(zapLogger)
	e.Use(pageGate)

	jwtAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Web.Secret),
	})
	api := e.Group("/admin/api", apiAuth(jwtAuth))

	if cfg.Web.AssetsDir != "" {
		e.Static("/", cfg.Web.AssetsDir)
	}

	server = &WebServer{root: e, api: api, cfg: cfg}
	return server
}

func (ws *WebServer) Listen() error {
	addr := fmt.Sprintf("%s:%d", ws.cfg.Web.Host, ws.cfg.Web.Port)
	zap.L().Info("admin web server listening", zap.String("addr", addr))
	return ws.root.Start(addr)
}

// Shutdown drains in-flight requests before stopping the listener
func (ws *WebServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = ws.root.Shutdown(ctx)
}

// Echo exposes the underlying engine, used by handler tests
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

// Route registry, mirrored by the adminapi register functions.

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// PubPOST registers an unauthenticated route (login, logout)
func PubPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

func PubGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

// zapLogger logs one line per request
func zapLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		zap.L().Debug("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
			zap.String("remote", c.RealIP()),
		)
		return err
	}
}

// pageGate redirects non-admin visitors away from admin pages. The
// allow=1 query parameter bypasses the gate for development; it is not
// a security control and must stay off production checklists.
func pageGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if !strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/admin/api") {
			return next(c)
		}
		if CurrentSession(c).IsAdmin() || c.QueryParam("allow") == "1" {
			return next(c)
		}
		return c.Redirect(http.StatusFound, "/login.html")
	}
}

// apiAuth admits requests carrying an admin cookie session, falling
// back to bearer token verification for machine clients.
func apiAuth(jwtAuth echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentSession(c).IsAdmin() {
				return next(c)
			}
			return jwtAuth(next)(c)
		}
	}
}

// CurrentSession reads the visitor session from the request cookie
func CurrentSession(c echo.Context) domain.Session {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return domain.Session{}
	}
	role, _ := sess.Values[sessionRoleKey].(string)
	email, _ := sess.Values[sessionEmailKey].(string)
	return domain.Session{Role: role, Email: email}
}

// SetSession writes the visitor session into the response cookie
func SetSession(c echo.Context, s domain.Session) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	sess.Values[sessionRoleKey] = s.Role
	sess.Values[sessionEmailKey] = s.Email
	_ = sess.Save(c.Request(), c.Response())
}

// ClearSession drops the visitor session cookie
func ClearSession(c echo.Context) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	sess.Values = map[interface{}]interface{}{}
	_ = sess.Save(c.Request(), c.Response())
}
