package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bookstore-report/internal/config"
	"bookstore-report/internal/handlers"
	"bookstore-report/internal/middlewares"
	"bookstore-report/internal/models"
	"bookstore-report/internal/services"
)

type emptyFinder struct{}

func (emptyFinder) FindByPublisher(ctx context.Context, filter models.PublisherFilter) ([]models.SaleRecord, error) {
	return nil, nil
}

func newTestRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Lang: "ru", AllowedOrigins: origins}
	h := handlers.NewReportHandler(services.NewReportService(emptyFinder{}), cfg.Lang)
	return NewRouter(cfg, h)
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter([]string{"*"})

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
	if w.Header().Get(middlewares.RequestIDHeader) == "" {
		t.Error("Expected request id header on every response")
	}
}

func TestReportRouteRegistered(t *testing.T) {
	r := newTestRouter([]string{"*"})

	req, _ := http.NewRequest("GET", "/api/v1/reports/sales?publisher=Unknown+Press", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d. Body: %s", w.Code, w.Body.String())
	}
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := newTestRouter([]string{"http://shop.example"})

	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://shop.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://shop.example" {
		t.Errorf("Expected allowed origin header, got %q", got)
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	r := newTestRouter([]string{"http://shop.example"})

	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for disallowed origin, got %d", w.Code)
	}
}

func TestCORSConfigWildcard(t *testing.T) {
	c := corsConfig([]string{"http://a.example", "*"})
	if !c.AllowAllOrigins {
		t.Error("Expected wildcard to allow all origins")
	}
	if len(c.AllowOrigins) != 0 {
		t.Errorf("Expected no explicit origins with wildcard, got %v", c.AllowOrigins)
	}
}
