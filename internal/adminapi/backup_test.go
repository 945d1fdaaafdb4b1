package adminapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/nonabeauty/storeadmin/internal/domain"
)

func TestExportImport_HandlersRoundTrip(t *testing.T) {
	src := newTestApp(t)
	src.st.UpsertProduct(domain.Product{Title: "Lipstick", Price: "99"})
	src.st.UpsertOffer(domain.Offer{Title: "Sale", Discount: "25"})
	src.st.Attach("img_1_abcdefg", "data:image/png;base64,AAA=")

	c, rec := newTestContext(src, http.MethodGet, "/admin/api/backup/export", "")
	if err := exportData(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "attachment") {
		t.Error("expected attachment disposition")
	}

	dst := newTestApp(t)
	c2, rec2 := newTestContext(dst, http.MethodPost, "/admin/api/backup/import", rec.Body.String())
	if err := importData(c2); err != nil {
		t.Fatal(err)
	}
	if rec2.Code != http.StatusOK {
		t.Fatalf("import: expected 200, got %d: %s", rec2.Code, rec2.Body.String())
	}

	if len(dst.st.Products()) != 1 || dst.st.Products()[0].Title != "Lipstick" {
		t.Errorf("products not reproduced: %+v", dst.st.Products())
	}
	if len(dst.st.Offers()) != 1 {
		t.Error("offers not reproduced")
	}
	if dst.st.Images()["img_1_abcdefg"] != "data:image/png;base64,AAA=" {
		t.Error("images not reproduced")
	}
}

func TestImportHandler_MalformedRejected(t *testing.T) {
	app := newTestApp(t)
	app.st.UpsertProduct(domain.Product{Title: "Keep"})

	c, rec := newTestContext(app, http.MethodPost, "/admin/api/backup/import", `{"products": "nope"}`)
	if err := importData(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if len(app.st.Products()) != 1 {
		t.Error("failed import must leave stores untouched")
	}
}

func TestExportProductsCSV(t *testing.T) {
	app := newTestApp(t)
	app.st.UpsertProduct(domain.Product{Title: "Lipstick", Price: "99", Category: "Makeup"})

	c, rec := newTestContext(app, http.MethodGet, "/admin/api/backup/products.csv", "")
	if err := exportProductsCSV(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Lipstick") || !strings.Contains(body, "99") {
		t.Errorf("unexpected csv body: %s", body)
	}
}

func TestGetSettings_And_AdminEmails(t *testing.T) {
	app := newTestApp(t)

	c, rec := newTestContext(app, http.MethodPost, "/admin/api/settings/admins", `{"email":"x@y.com"}`)
	if err := addAdminEmail(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var cfg domain.SiteConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range cfg.AdminEmails {
		if e == "x@y.com" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected x@y.com in admin emails: %v", cfg.AdminEmails)
	}
}
