package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nonabeauty/storeadmin/internal/domain"
	"github.com/nonabeauty/storeadmin/internal/webserver"
)

type categoryPayload struct {
	Title string `json:"title"`
}

func registerCategoryRoutes() {
	webserver.ApiGET("/categories", listCategories)
	webserver.ApiPOST("/categories", createCategory)
	webserver.ApiPUT("/categories/:id", updateCategory)
	webserver.ApiDELETE("/categories/:id", deleteCategory)
}

func listCategories(c echo.Context) error {
	return ok(c, GetStore(c).Categories())
}

func createCategory(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse category", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Title is required", nil)
	}
	cat := GetStore(c).UpsertCategory(domain.Category{Title: payload.Title})
	return ok(c, cat)
}

func updateCategory(c echo.Context) error {
	id := c.Param("id")
	st := GetStore(c)

	found := false
	for _, cat := range st.Categories() {
		if cat.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
	}

	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse category", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Title is required", nil)
	}
	cat := st.UpsertCategory(domain.Category{ID: id, Title: payload.Title})
	return ok(c, cat)
}

func deleteCategory(c echo.Context) error {
	id := c.Param("id")
	GetStore(c).DeleteCategory(id)
	return ok(c, map[string]interface{}{"id": id})
}
