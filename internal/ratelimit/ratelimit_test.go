package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/bookshelf/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LimitsPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw, err := NewFactory(nil).Middleware("comments", "2-M", "Too many comments. Please wait a minute.")
	require.NoError(t, err)

	router := gin.New()
	router.POST("/comments", mw, func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func(ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/comments", nil)
		req.RemoteAddr = ip + ":1234"
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, send("10.0.0.1").Code)

	w := send("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, errors.CodeTooManyRequests, body.Error)
	assert.Equal(t, "Too many comments. Please wait a minute.", body.Message)

	// other clients keep their own budget
	assert.Equal(t, http.StatusCreated, send("10.0.0.2").Code)
}

func TestMiddleware_InvalidRate(t *testing.T) {
	_, err := NewFactory(nil).Middleware("comments", "five per minute", "x")
	assert.Error(t, err)
}
