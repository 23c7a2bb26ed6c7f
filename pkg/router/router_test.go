package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/fintrack/pkg/router"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutesAreTracked(t *testing.T) {
	r := router.New()
	r.Get("/companies", "companies.index", okHandler)
	r.Post("/companies", "companies.store", okHandler)
	r.Get("/companies/{id}", "companies.show", okHandler)

	infos := r.Routes()
	if len(infos) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(infos))
	}

	path, ok := r.Path("companies.show")
	if !ok || path != "/companies/{id}" {
		t.Errorf("Path(companies.show) = %q, %v", path, ok)
	}
}

func TestURLSubstitutesParams(t *testing.T) {
	r := router.New()
	r.Get("/companies/{id}/pods/{pod}", "companies.pods", okHandler)

	url, err := r.URL("companies.pods", map[string]string{"id": "4", "pod": "9"})
	if err != nil {
		t.Fatal(err)
	}
	if url != "/companies/4/pods/9" {
		t.Errorf("URL = %q", url)
	}

	if _, err := r.URL("companies.pods", map[string]string{"id": "4"}); err == nil {
		t.Error("expected error for missing param")
	}

	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route name")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", mw("outer"))
	inner := api.Group("", mw("inner"))
	inner.Get("/ping", "ping", okHandler, mw("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "route" {
		t.Errorf("middleware order = %v", order)
	}
}

func TestNotFoundCataloguesEndpoints(t *testing.T) {
	r := router.New()
	r.Get("/health", "health", okHandler)
	r.Post("/api/auth/login", "auth.login", okHandler)

	var got []string
	r.NotFound(func(w http.ResponseWriter, req *http.Request, endpoints []string) {
		got = endpoints
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(got) != 2 {
		t.Fatalf("endpoints = %v", got)
	}
	// Endpoints() sorts lexicographically.
	if got[0] != "GET /health" || got[1] != "POST /api/auth/login" {
		t.Errorf("endpoints = %v", got)
	}
}
