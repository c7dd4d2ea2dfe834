package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_back_end/internal/models"
	"lumiere_back_end/internal/utils"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AuthRequired(), RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	r := newProtectedRouter()

	token, err := utils.GenerateJWT(models.User{ID: "admin-001", Email: "admin@lumiere-botanical.com", Role: "admin"})
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin-001")
}

func TestAuthRequiredRejectsMissingOrMalformedHeader(t *testing.T) {
	r := newProtectedRouter()

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer pas-un-jwt").Code)
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	r := newProtectedRouter()

	claims := jwt.MapClaims{
		"user_id": "admin-001",
		"role":    "admin",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer "+token).Code)
}

func TestRequireAdminRejectsNonAdminRole(t *testing.T) {
	r := newProtectedRouter()

	token, err := utils.GenerateJWT(models.User{ID: "user-002", Email: "client@exemple.com", Role: "customer"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+token).Code)
}
