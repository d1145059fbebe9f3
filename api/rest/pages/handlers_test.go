package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/bookshelf/server/bookshelf/pages"
	"codeberg.org/bookshelf/server/bookshelf/services"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	about   *pages.AboutPage
	zeedits *pages.ZeeditsPage
	err     error
}

func (f *fakeStore) GetAbout(context.Context) (*pages.AboutPage, error) {
	if f.about == nil {
		return nil, pages.ErrPageNotFound
	}

	return f.about, nil
}

func (f *fakeStore) UpdateAbout(_ context.Context, in pages.AboutInput) (*pages.AboutPage, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.about = &pages.AboutPage{ID: "about", Title: in.Title, Content: in.Content}
	return f.about, nil
}

func (f *fakeStore) GetZeedits(context.Context) (*pages.ZeeditsPage, error) {
	if f.zeedits == nil {
		return nil, pages.ErrPageNotFound
	}

	return f.zeedits, nil
}

func (f *fakeStore) UpdateZeedits(_ context.Context, in pages.ZeeditsInput) (*pages.ZeeditsPage, error) {
	f.zeedits = &pages.ZeeditsPage{ID: "z", HeroTitle: in.HeroTitle, ContactEmail: in.ContactEmail}
	return f.zeedits, nil
}

type fakeLister struct{}

func (fakeLister) List(context.Context) ([]services.Service, error) {
	return []services.Service{{ID: "s1", Title: "Editing", DisplayOrder: 1}}, nil
}

func do(store Store, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api/v1")
	RegisterRoutes(api, api.Group("/admin"), store, fakeLister{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestAbout(t *testing.T) {
	store := &fakeStore{}

	assert.Equal(t, http.StatusNotFound, do(store, http.MethodGet, "/api/v1/public/about", "").Code)

	w := do(store, http.MethodPut, "/api/v1/admin/about", `{"title":"About me","content":"Hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(store, http.MethodGet, "/api/v1/public/about", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "About me")
}

func TestUpdateAbout_RedactsStructuralErrors(t *testing.T) {
	store := &fakeStore{err: fmt.Errorf("failed to save about page: %w", &pgconn.PgError{
		Code:    "42P01",
		Message: `relation "about_pagee" does not exist`,
	})}

	w := do(store, http.MethodPut, "/api/v1/admin/about", `{"title":"t","content":"c"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "about_pagee")
	assert.Contains(t, w.Body.String(), "A database error occurred")
}

func TestZeedits(t *testing.T) {
	store := &fakeStore{}

	w := do(store, http.MethodGet, "/api/v1/public/zeedits", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ZeeditsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Page)
	assert.Len(t, resp.Services, 1)

	w = do(store, http.MethodPut, "/api/v1/admin/zeedits", `{"hero_title":"Zeedits","contact_email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(store, http.MethodPut, "/api/v1/admin/zeedits", `{"hero_title":"Zeedits","contact_email":"hi@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
