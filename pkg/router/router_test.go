package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body)) //nolint:errcheck
	}
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/products", "products.index", okHandler("list"))
	r.Get("/products/{id}", "products.show", okHandler("show"))

	path, ok := r.Path("products.index")
	require.True(t, ok)
	assert.Equal(t, "/products", path)

	_, ok = r.Path("missing")
	assert.False(t, ok)
}

func TestURL(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "products.show", okHandler("show"))

	url, err := r.URL("products.show", map[string]string{"id": "3"})
	require.NoError(t, err)
	assert.Equal(t, "/products/3", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err, "unsubstituted params are an error")

	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestGroupPrefix(t *testing.T) {
	r := New()
	api := r.Group("/api")
	api.Get("/ping", "ping", okHandler("pong"))

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	path, ok := r.Path("ping")
	require.True(t, ok)
	assert.Equal(t, "/api/ping", path)
}

func TestRoutesListing(t *testing.T) {
	r := New()
	api := r.Group("/api")
	api.Get("/products", "products.index", okHandler(""))
	api.Post("/checkout", "checkout", okHandler(""))
	r.HandleFunc("/metrics", okHandler("")) // unnamed, not listed

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, RouteInfo{Method: http.MethodGet, Path: "/api/products", Name: "products.index"}, infos[0])
	assert.Equal(t, RouteInfo{Method: http.MethodPost, Path: "/api/checkout", Name: "checkout"}, infos[1])
}

func TestGroupMiddleware(t *testing.T) {
	tag := func(value string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Tag", value)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	api := r.Group("/api", tag("outer"))
	api.Get("/ping", "ping", okHandler("pong"), tag("inner"))

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, []string{"outer", "inner"}, w.Header().Values("X-Tag"))
}
