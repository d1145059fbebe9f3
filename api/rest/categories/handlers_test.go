package categories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/bookshelf/server/bookshelf/categories"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

const categoryID = "8a1f0c2e-5b3d-4e7f-9a6b-1c2d3e4f5a6b"

type fakeStore struct {
	err error
}

func (f *fakeStore) List(context.Context) ([]categories.Category, error) {
	return []categories.Category{{ID: categoryID, Name: "Fiction", Slug: "fiction"}}, f.err
}

func (f *fakeStore) Create(_ context.Context, in categories.CategoryInput) (*categories.Category, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &categories.Category{ID: categoryID, Name: in.Name, Slug: "fiction"}, nil
}

func (f *fakeStore) Update(_ context.Context, id string, in categories.CategoryInput) (*categories.Category, error) {
	if id != categoryID {
		return nil, categories.ErrCategoryNotFound
	}

	return &categories.Category{ID: id, Name: in.Name}, nil
}

func (f *fakeStore) Delete(context.Context, string) error {
	return f.err
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

func TestList(t *testing.T) {
	w := do(&fakeStore{}, http.MethodGet, "/api/v1/public/categories", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"fiction"`)
}

func TestCreate(t *testing.T) {
	assert.Equal(t, http.StatusCreated, do(&fakeStore{}, http.MethodPost, "/api/v1/admin/categories", `{"name":"Fiction"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(&fakeStore{}, http.MethodPost, "/api/v1/admin/categories", `{}`).Code)

	w := do(&fakeStore{err: categories.ErrEmptySlug}, http.MethodPost, "/api/v1/admin/categories", `{"name":"!!"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdate_Missing(t *testing.T) {
	w := do(&fakeStore{}, http.MethodPut, "/api/v1/admin/categories/00000000-0000-0000-0000-000000000000", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_InUseIsBadRequest(t *testing.T) {
	store := &fakeStore{err: &pgconn.PgError{
		Code:    "23503",
		Message: `update or delete on table "categories" violates foreign key constraint "reviews_category_id_fkey" on table "reviews"`,
	}}

	w := do(store, http.MethodDelete, "/api/v1/admin/categories/"+categoryID, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "linked to other data")
	assert.NotContains(t, w.Body.String(), "reviews_category_id_fkey")
}
