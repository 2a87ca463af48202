package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newAuthTestRouter(t *testing.T, handlers ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", append(handlers, func(ctx *gin.Context) {
		caller, _ := GetCaller(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": caller.UserID, "role": caller.Role})
	})...)

	return router
}

func TestAuthenticator_VerifyJWT(t *testing.T) {
	authenticator := NewAuthenticator(testSigningKey)

	t.Run("missing token", func(t *testing.T) {
		router := newAuthTestRouter(t, authenticator.VerifyJWT())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		router := newAuthTestRouter(t, authenticator.VerifyJWT())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token resolves the caller", func(t *testing.T) {
		router := newAuthTestRouter(t, authenticator.VerifyJWT())

		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, domain.RoleAdmin, "test-agent")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})

	t.Run("token bound to another user agent", func(t *testing.T) {
		router := newAuthTestRouter(t, authenticator.VerifyJWT())

		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, domain.RoleAdmin, "test-agent")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "another-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	authenticator := NewAuthenticator(testSigningKey)

	t.Run("rejects a regular user", func(t *testing.T) {
		router := newAuthTestRouter(t, authenticator.VerifyJWT(), RequireAdmin())

		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, domain.RoleUser, "test-agent")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lets an admin through", func(t *testing.T) {
		router := newAuthTestRouter(t, authenticator.VerifyJWT(), RequireAdmin())

		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, domain.RoleAdmin, "test-agent")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthenticator_VerifyJWTOptional(t *testing.T) {
	authenticator := NewAuthenticator(testSigningKey)

	t.Run("anonymous requests pass through", func(t *testing.T) {
		router := newAuthTestRouter(t, authenticator.VerifyJWTOptional())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":0`)
	})

	t.Run("valid token still resolves the caller", func(t *testing.T) {
		router := newAuthTestRouter(t, authenticator.VerifyJWTOptional())

		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, domain.RoleUser, "test-agent")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})
}
