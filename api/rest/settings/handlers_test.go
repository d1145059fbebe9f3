package settings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/bookshelf/server/bookshelf/settings"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	values map[string]string
}

func (f *fakeStore) Get(context.Context) (map[string]string, error) {
	return f.values, nil
}

func (f *fakeStore) Update(_ context.Context, values map[string]string) (map[string]string, error) {
	for k := range values {
		if k != settings.KeySiteName && k != settings.KeySiteTagline && k != settings.KeySiteDescription {
			return nil, fmt.Errorf("%w: %s", settings.ErrUnknownKey, k)
		}
	}

	for k, v := range values {
		f.values[k] = v
	}
	return f.values, nil
}

func do(store Store, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api/v1")
	RegisterRoutes(api, api.Group("/admin"), store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestSettings(t *testing.T) {
	store := &fakeStore{values: map[string]string{settings.KeySiteName: "Bookshelf"}}

	w := do(store, http.MethodGet, "/api/v1/public/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"site_name":"Bookshelf"`)

	w = do(store, http.MethodPut, "/api/v1/admin/settings", `{"settings":{"site_tagline":"Read more"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Read more", store.values[settings.KeySiteTagline])

	w = do(store, http.MethodPut, "/api/v1/admin/settings", `{"settings":{"theme":"dark"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "theme")
}
