package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gestao-dashboard/internal/config"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

type usersStub struct {
	users []models.User
	err   error
}

func (s *usersStub) ListUsers(context.Context) ([]models.User, error) {
	return s.users, s.err
}

func newAuthEngine(cfg *config.Config, users UserSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":       c.GetUint(ContextUserID),
			"role":     c.GetString(ContextUserRole),
			"username": c.GetString(ContextUsername),
		})
	})
	r.GET("/admin", RequireRole(users, "admin"), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func get(r *gin.Engine, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := newAuthEngine(cfg, &usersStub{})

	valid := signed(t, "secret", jwt.MapClaims{
		"sub": 3, "role": "admin", "username": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	expired := signed(t, "secret", jwt.MapClaims{
		"sub": 3, "role": "admin",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	foreign := signed(t, "other", jwt.MapClaims{"sub": 3, "role": "admin"})
	noSub := signed(t, "secret", jwt.MapClaims{"role": "admin"})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"missing subject", "Bearer " + noSub, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/me", tt.header)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	w := get(r, "/me", "Bearer "+valid)
	assert.JSONEq(t, `{"id":3,"role":"admin","username":"admin"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	users := &usersStub{users: []models.User{
		{ID: 1, Username: "vendedor1", Role: "vendedor"},
		{ID: 3, Username: "admin", Role: "admin"},
	}}
	r := newAuthEngine(cfg, users)

	admin := signed(t, "secret", jwt.MapClaims{"sub": 3, "role": "admin"})
	seller := signed(t, "secret", jwt.MapClaims{"sub": 1, "role": "vendedor"})

	assert.Equal(t, http.StatusNoContent, get(r, "/admin", "Bearer "+admin).Code)

	w := get(r, "/admin", "Bearer "+seller)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"forbidden"`)
}

func TestRequireRoleReadsStoredRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	users := &usersStub{users: []models.User{
		{ID: 1, Username: "ex-admin", Role: "vendedor"},
	}}
	r := newAuthEngine(cfg, users)

	// the token was issued before the demotion
	demoted := signed(t, "secret", jwt.MapClaims{"sub": 1, "role": "admin"})
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", "Bearer "+demoted).Code)

	deleted := signed(t, "secret", jwt.MapClaims{"sub": 9, "role": "admin"})
	w := get(r, "/admin", "Bearer "+deleted)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"user_not_found"`)

	users.err = errors.New("store offline")
	w = get(r, "/admin", "Bearer "+demoted)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
