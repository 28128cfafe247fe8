package handlers

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gestao-dashboard/internal/dto"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
)

// AuditSource lists the stored audit trail.
type AuditSource interface {
	ListAudit(ctx context.Context) ([]models.AuditLog, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	source AuditSource
	loc    *time.Location
}

// NewAuditLogsHandler reads the from/to day bounds in loc, the zone the
// audit clock stamps entries in.
func NewAuditLogsHandler(source AuditSource, loc *time.Location) *AuditLogsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AuditLogsHandler{source: source, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := h.source.ListAudit(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	var from, to time.Time
	if fromStr != "" {
		from, _ = timezone.ParseDateIn(fromStr, h.loc)
	}
	if toStr != "" {
		if t, err := timezone.ParseDateIn(toStr, h.loc); err == nil {
			to = t.AddDate(0, 0, 1)
		}
	}

	filtered := make([]models.AuditLog, 0, len(logs))
	for _, l := range logs {
		if action != "" && l.Action != action {
			continue
		}
		if entity != "" && l.Entity != entity {
			continue
		}
		if !from.IsZero() && l.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !l.CreatedAt.Before(to) {
			continue
		}
		filtered = append(filtered, l)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	// --------------------------------------------------
	// Página
	// --------------------------------------------------

	total := len(filtered)
	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := start + limit
	if end > total {
		end = total
	}

	httpresp.OK(c, dto.AuditLogPage{
		Data:  filtered[start:end],
		Page:  page,
		Limit: limit,
		Total: total,
	})
}
