package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/bookshelf/server/internal/config"
	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifier_LoadsMappingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`rules:
  - pattern: "statement timeout"
    message: "The request took too long. Please try again."
    category: connectivity
`), 0o600))

	cl, err := newClassifier(&config.Config{Environment: "production", ErrorMappingsFile: path})
	require.NoError(t, err)

	assert.Equal(t, "The request took too long. Please try again.",
		cl.Classify("canceling statement due to statement timeout", errors.Public, "fb"))
}

func TestNewClassifier_RejectsBadMappings(t *testing.T) {
	_, err := newClassifier(&config.Config{ErrorMappingsFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "shadow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`rules:
  - pattern: "constraint"
    message: "Something is wrong."
`), 0o600))

	_, err = newClassifier(&config.Config{ErrorMappingsFile: path})
	assert.Error(t, err)
}

func TestConnectRedis_EmptyURL(t *testing.T) {
	client, err := connectRedis(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)

	_, err = connectRedis(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestCORSConfig(t *testing.T) {
	cfg := corsConfig(&config.Config{AllowedOrigins: []string{"https://bookshelf.example"}})

	assert.Equal(t, []string{"https://bookshelf.example"}, cfg.AllowOrigins)
	assert.Contains(t, cfg.AllowHeaders, "Authorization")
	assert.NoError(t, cfg.Validate())
}

func TestSwaggerHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/swagger/doc.json", swaggerHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/api/v1/public/reviews/{slug}/comments")
}
