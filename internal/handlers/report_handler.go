package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	ucReport "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/report"
)

type ReportHandler struct {
	earnings  *ucReport.GetEarnings
	dashboard *ucReport.GetDashboard
}

func NewReportHandler(earnings *ucReport.GetEarnings, dashboard *ucReport.GetDashboard) *ReportHandler {
	return &ReportHandler{earnings: earnings, dashboard: dashboard}
}

func (h *ReportHandler) Earnings(c *gin.Context) {
	e, err := h.earnings.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, e)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, d)
}
