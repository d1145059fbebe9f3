package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func signClaims(t *testing.T, claims Claims, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return s
}

func TestGenerateJWT_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("user-123", "test@example.com", false)

	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("user-123", "test@example.com", false)

	assert.ErrorContains(t, err, "JWT_SECRET not set")
}

func TestValidateJWT_RoundTripKeepsClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	testCases := []struct {
		userID  string
		email   string
		isAdmin bool
	}{
		{"user-123", "reader@example.com", false},
		{"user-456", "editor@example.com", true},
		{"user-789-with-special-chars", "user+tag@example.com", false},
	}

	for _, tc := range testCases {
		token, err := GenerateJWT(tc.userID, tc.email, tc.isAdmin)
		require.NoError(t, err)

		claims, err := ValidateJWT(token)
		require.NoError(t, err)

		assert.Equal(t, tc.userID, claims.UserID)
		assert.Equal(t, tc.email, claims.Email)
		assert.Equal(t, tc.isAdmin, claims.IsAdmin)
		assert.Equal(t, tokenIssuer, claims.Issuer)

		expiry := claims.ExpiresAt.Time.Sub(time.Now().Add(tokenTTL)).Abs()
		assert.Less(t, expiry, 5*time.Second)
	}
}

func TestValidateJWT_Rejections(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	valid, err := GenerateJWT("user-123", "test@example.com", true)
	require.NoError(t, err)

	expired := signClaims(t, Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	wrongSecret := signClaims(t, Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "different-secret-key")

	wrongIssuer := signClaims(t, Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	noExpiry := signClaims(t, Claims{
		UserID:           "user-123",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
	}, testSecret)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:  "attacker",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noneToken, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	tokens := map[string]string{
		"expired":      expired,
		"wrong secret": wrongSecret,
		"wrong issuer": wrongIssuer,
		"no expiry":    noExpiry,
		"alg none":     noneToken,
		"tampered":     valid[:len(valid)-5] + "XXXXX",
		"empty":        "",
		"malformed":    "not.a.jwt",
		"script":       "<script>alert('xss')</script>",
	}

	for name, token := range tokens {
		_, err := ValidateJWT(token)
		assert.Error(t, err, name)
	}
}

func newRouter(middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/guarded", middleware, func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "is_admin": IsAdmin(c)})
	})

	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)

	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("user-1", "reader@example.com", false)
	require.NoError(t, err)

	router := newRouter(AuthMiddleware())

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "Token "+token).Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "Bearer garbage").Code)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	reader, err := GenerateJWT("user-1", "reader@example.com", false)
	require.NoError(t, err)

	admin, err := GenerateJWT("user-2", "admin@example.com", true)
	require.NoError(t, err)

	router := newRouter(AdminAuthMiddleware())

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "Bearer "+reader).Code)

	w := doRequest(router, "Bearer "+admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_admin":true`)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("user-1", "reader@example.com", false)
	require.NoError(t, err)

	router := newRouter(OptionalAuthMiddleware())

	w := doRequest(router, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)

	w = doRequest(router, "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)

	w = doRequest(router, "Bearer "+token)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
}
