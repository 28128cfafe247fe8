package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gestao-dashboard/internal/dto"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

type auditSourceStub []models.AuditLog

func (s auditSourceStub) ListAudit(context.Context) ([]models.AuditLog, error) {
	return s, nil
}

var brt = time.FixedZone("BRT", -3*60*60)

func auditLogsEngine(logs []models.AuditLog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/audit-logs", NewAuditLogsHandler(auditSourceStub(logs), brt).List)
	return r
}

func getAuditPage(t *testing.T, r *gin.Engine, query string) dto.AuditLogPage {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit-logs"+query, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page dto.AuditLogPage
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &page))
	return page
}

func TestAuditLogsPagination(t *testing.T) {
	logs := make([]models.AuditLog, 0, 5)
	base := time.Date(2025, 8, 20, 9, 0, 0, 0, brt)
	for i := 0; i < 5; i++ {
		logs = append(logs, models.AuditLog{
			ID:        string(rune('a' + i)),
			Action:    "client_created",
			Entity:    "client",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	r := auditLogsEngine(logs)

	page := getAuditPage(t, r, "?page=2&limit=2")
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "c", page.Data[0].ID)

	page = getAuditPage(t, r, "?page=3&limit=2")
	require.Len(t, page.Data, 1)
	assert.Equal(t, "a", page.Data[0].ID)

	page = getAuditPage(t, r, "?page=4&limit=2")
	assert.Empty(t, page.Data)

	page = getAuditPage(t, r, "?page=9223372036854775807&limit=200")
	assert.Empty(t, page.Data)
	assert.Equal(t, 5, page.Total)
}

func TestAuditLogsDayWindowUsesClockZone(t *testing.T) {
	logs := []models.AuditLog{
		// 23:00 of the 19th local is already the 20th in UTC
		{ID: "before", Action: "login", CreatedAt: time.Date(2025, 8, 19, 23, 0, 0, 0, brt)},
		{ID: "morning", Action: "login", CreatedAt: time.Date(2025, 8, 20, 0, 30, 0, 0, brt)},
		// 22:30 of the 20th local is the 21st in UTC
		{ID: "night", Action: "login", CreatedAt: time.Date(2025, 8, 20, 22, 30, 0, 0, brt)},
		{ID: "after", Action: "login", CreatedAt: time.Date(2025, 8, 21, 0, 0, 0, 0, brt)},
	}
	r := auditLogsEngine(logs)

	page := getAuditPage(t, r, "?from=2025-08-20&to=20/08/2025")
	ids := make([]string, 0, len(page.Data))
	for _, l := range page.Data {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"night", "morning"}, ids)
}
