package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nonabeauty/storeadmin/internal/domain"
	"github.com/nonabeauty/storeadmin/internal/webserver"
)

type offerPayload struct {
	Title       string            `json:"title"`
	Discount    domain.FlexString `json:"discount"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
}

func registerOfferRoutes() {
	webserver.ApiGET("/offers", listOffers)
	webserver.ApiGET("/offers/:id", getOffer)
	webserver.ApiPOST("/offers", createOffer)
	webserver.ApiPUT("/offers/:id", updateOffer)
	webserver.ApiDELETE("/offers/:id", deleteOffer)
}

func listOffers(c echo.Context) error {
	page, pageSize := parsePagination(c)
	list := GetStore(c).Offers()
	lo, hi := pageWindow(len(list), page, pageSize)
	return paged(c, list[lo:hi], int64(len(list)), page, pageSize)
}

func getOffer(c echo.Context) error {
	id := c.Param("id")
	for _, o := range GetStore(c).Offers() {
		if o.ID == id {
			return ok(c, o)
		}
	}
	return fail(c, http.StatusNotFound, "NOT_FOUND", "Offer not found", nil)
}

func createOffer(c echo.Context) error {
	var payload offerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse offer", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Title is required", nil)
	}

	o := GetStore(c).UpsertOffer(domain.Offer{
		Title:       payload.Title,
		Discount:    payload.Discount,
		Description: payload.Description,
		Image:       payload.Image,
	})
	return ok(c, o)
}

func updateOffer(c echo.Context) error {
	id := c.Param("id")
	st := GetStore(c)

	found := false
	for _, o := range st.Offers() {
		if o.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Offer not found", nil)
	}

	var payload offerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse offer", err.Error())
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Title is required", nil)
	}

	o := st.UpsertOffer(domain.Offer{
		ID:          id,
		Title:       payload.Title,
		Discount:    payload.Discount,
		Description: payload.Description,
		Image:       payload.Image,
	})
	return ok(c, o)
}

func deleteOffer(c echo.Context) error {
	id := c.Param("id")
	GetStore(c).DeleteOffer(id)
	return ok(c, map[string]interface{}{"id": id})
}
