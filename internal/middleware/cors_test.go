package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsEngine(allowed []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(allowed))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func corsRequest(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAnyOrigin(t *testing.T) {
	r := corsEngine(nil)

	w := corsRequest(r, http.MethodGet, "http://localhost:5173")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = corsRequest(r, http.MethodOptions, "http://localhost:5173")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORSAllowList(t *testing.T) {
	r := corsEngine([]string{"https://painel.example.com"})

	w := corsRequest(r, http.MethodGet, "https://painel.example.com")
	assert.Equal(t, "https://painel.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = corsRequest(r, http.MethodGet, "https://outro.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = corsRequest(r, http.MethodOptions, "https://outro.example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = corsRequest(r, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
