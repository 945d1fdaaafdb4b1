package adminapi

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nonabeauty/storeadmin/internal/webserver"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// imports are capped; a full image map of base64 blobs is still far
// below this
const maxImportSize = 64 << 20

func registerBackupRoutes() {
	webserver.ApiGET("/backup/export", exportData)
	webserver.ApiPOST("/backup/import", importData)
	webserver.ApiGET("/backup/products.csv", exportProductsCSV)
}

// exportData streams the full dataset as a downloadable JSON document
func exportData(c echo.Context) error {
	data, err := json.MarshalIndent(GetStore(c).Export(), "", "  ")
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to encode export", err.Error())
	}
	filename := fmt.Sprintf("nona-data-%d.json", time.Now().UnixMilli())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// importData accepts either a multipart upload under "file" or the raw
// JSON body. A malformed payload aborts the import with a single error;
// sections absent from the payload stay untouched.
func importData(c echo.Context) error {
	payload, err := readImportPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to read import payload", err.Error())
	}
	if err := GetStore(c).Import(payload); err != nil {
		zap.L().Warn("import rejected", zap.Error(err))
		return fail(c, http.StatusBadRequest, "IMPORT_FAILED", "Import failed", err.Error())
	}
	zap.L().Info("data import applied", zap.Int("bytes", len(payload)))
	return ok(c, map[string]interface{}{"imported": true})
}

func readImportPayload(c echo.Context) ([]byte, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImportSize))
	}
	return io.ReadAll(io.LimitReader(c.Request().Body, maxImportSize))
}

func exportProductsCSV(c echo.Context) error {
	products := GetStore(c).Products()
	out, err := gocsv.MarshalString(&products)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to encode CSV", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(out))
}
