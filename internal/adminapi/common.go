package adminapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nonabeauty/storeadmin/config"
	"github.com/nonabeauty/storeadmin/internal/auth"
	"github.com/nonabeauty/storeadmin/internal/store"
	"github.com/nonabeauty/storeadmin/internal/webserver"
)

// AppContext is what the handlers need from the application container
type AppContext interface {
	Store() *store.Storage
	Auth() *auth.Manager
	Config() *config.AppConfig
	StartTime() time.Time
}

// Register wires every admin API route into the webserver registry
func Register() {
	registerAuthRoutes()
	registerProductRoutes()
	registerOfferRoutes()
	registerCategoryRoutes()
	registerImageRoutes()
	registerSettingsRoutes()
	registerBackupRoutes()
	registerSystemRoutes()
}

func GetApp(c echo.Context) AppContext {
	return c.Get(webserver.AppContextKey).(AppContext)
}

func GetStore(c echo.Context) *store.Storage {
	return GetApp(c).Store()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, msg string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": msg,
		"detail":  detail,
	})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":    rows,
		"total":   total,
		"page":    page,
		"perPage": pageSize,
	})
}

// parsePagination accepts both perPage and the legacy pageSize param
func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	perPage := c.QueryParam("perPage")
	if perPage == "" {
		perPage = c.QueryParam("pageSize")
	}
	if ps, err := strconv.Atoi(perPage); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

// pageWindow slices one page out of an in-memory list
func pageWindow(length, page, pageSize int) (lo, hi int) {
	lo = (page - 1) * pageSize
	if lo > length {
		lo = length
	}
	hi = lo + pageSize
	if hi > length {
		hi = length
	}
	return lo, hi
}
