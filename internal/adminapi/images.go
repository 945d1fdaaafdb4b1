package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nonabeauty/storeadmin/internal/domain"
	"github.com/nonabeauty/storeadmin/internal/webserver"
	"github.com/nonabeauty/storeadmin/pkg/common"
)

type imagePayload struct {
	// Data carries the full data-URI encoded payload
	Data string `json:"data"`
}

func registerImageRoutes() {
	webserver.ApiGET("/images", listImages)
	webserver.ApiGET("/images/:id", getImage)
	webserver.ApiPOST("/images", attachImage)
	webserver.ApiDELETE("/images/:id", detachImage)
	webserver.ApiDELETE("/images", clearImages)
}

// listImages returns ids and payload sizes; the payloads themselves are
// fetched one by one to keep the listing light.
func listImages(c echo.Context) error {
	images := GetStore(c).Images()
	out := make([]map[string]interface{}, 0, len(images))
	for id, data := range images {
		out = append(out, map[string]interface{}{
			"id":   id,
			"size": len(data),
		})
	}
	return ok(c, out)
}

func getImage(c echo.Context) error {
	id := c.Param("id")
	images := GetStore(c).Images()
	data, exists := images[id]
	if !exists {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Image not found", nil)
	}
	return ok(c, map[string]interface{}{"id": id, "data": data})
}

// attachImage stores the payload and returns the generated id. The
// attach completes before the response, so a following entity save can
// reference the id without racing the upload.
func attachImage(c echo.Context) error {
	var payload imagePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse image", err.Error())
	}
	if payload.Data == "" {
		return fail(c, http.StatusBadRequest, "MISSING_DATA", "Image data is required", nil)
	}
	id := common.NewID(domain.PrefixImage)
	GetStore(c).Attach(id, payload.Data)
	return ok(c, map[string]interface{}{"id": id})
}

func detachImage(c echo.Context) error {
	id := c.Param("id")
	GetStore(c).Detach(id)
	return ok(c, map[string]interface{}{"id": id})
}

func clearImages(c echo.Context) error {
	GetStore(c).ClearImages()
	return ok(c, map[string]interface{}{"cleared": true})
}
