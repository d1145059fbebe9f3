package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/bookshelf/server/internal/auth"
	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	err error
}

func (f fakeStats) Stats(context.Context) (*storage.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &storage.Stats{Reviews: 3, Comments: 7, Categories: 2}, nil
}

func do(source StatsSource, token string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	admin := router.Group("/api/v1/admin")
	admin.Use(auth.AdminAuthMiddleware())
	RegisterRoutes(admin, source)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	return w
}

func TestGetStats(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminToken, err := auth.GenerateJWT("u1", "admin@example.com", true)
	require.NoError(t, err)

	readerToken, err := auth.GenerateJWT("u2", "reader@example.com", false)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(fakeStats{}, "").Code)
	assert.Equal(t, http.StatusForbidden, do(fakeStats{}, readerToken).Code)

	w := do(fakeStats{}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stats":{"reviews":3,"comments":7,"categories":2}}`, w.Body.String())

	w = do(fakeStats{err: fmt.Errorf("failed to count rows: permission denied for table comments")}, adminToken)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "table comments")
}
