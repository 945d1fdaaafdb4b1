package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nonabeauty/storeadmin/internal/domain"
	"github.com/nonabeauty/storeadmin/internal/webserver"
)

type productPayload struct {
	Title       string            `json:"title"`
	Price       domain.FlexString `json:"price"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Images      []string          `json:"images"`
}

// registerProductRoutes registers product CRUD endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)
	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))
	category := strings.TrimSpace(c.QueryParam("category"))

	list := GetStore(c).Products()
	if q != "" || category != "" {
		filtered := make([]domain.Product, 0, len(list))
		for _, p := range list {
			if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
				continue
			}
			if category != "" && p.Category != category {
				continue
			}
			filtered = append(filtered, p)
		}
		list = filtered
	}

	lo, hi := pageWindow(len(list), page, pageSize)
	return paged(c, list[lo:hi], int64(len(list)), page, pageSize)
}

func getProduct(c echo.Context) error {
	id := c.Param("id")
	for _, p := range GetStore(c).Products() {
		if p.ID == id {
			return ok(c, p)
		}
	}
	return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Title is required", nil)
	}

	p := GetStore(c).UpsertProduct(domain.Product{
		Title:       payload.Title,
		Price:       payload.Price,
		Category:    payload.Category,
		Description: payload.Description,
		Images:      payload.Images,
	})
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id := c.Param("id")
	st := GetStore(c)

	found := false
	for _, p := range st.Products() {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Title is required", nil)
	}

	p := st.UpsertProduct(domain.Product{
		ID:          id,
		Title:       payload.Title,
		Price:       payload.Price,
		Category:    payload.Category,
		Description: payload.Description,
		Images:      payload.Images,
	})
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id := c.Param("id")
	GetStore(c).DeleteProduct(id)
	return ok(c, map[string]interface{}{"id": id})
}
