package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/cashflow"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	ucCashFlow "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/cashflow"
)

type CashFlowHandler struct {
	create *ucCashFlow.CreateEntry
	remove *ucCashFlow.DeleteEntry
	list   *ucCashFlow.ListEntries
}

func NewCashFlowHandler(
	create *ucCashFlow.CreateEntry,
	remove *ucCashFlow.DeleteEntry,
	list *ucCashFlow.ListEntries,
) *CashFlowHandler {
	return &CashFlowHandler{create: create, remove: remove, list: list}
}

func filterFromQuery(c *gin.Context) domain.Filter {
	return domain.Filter{
		Kind: c.Query("tipo"),
		From: c.Query("de"),
		To:   c.Query("ate"),
	}
}

// List accepts ?tipo=entrada|saida|todos&de=&ate=.
func (h *CashFlowHandler) List(c *gin.Context) {
	entries, err := h.list.Execute(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, entries)
}

func (h *CashFlowHandler) Balance(c *gin.Context) {
	totals, err := h.list.Balance(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, totals)
}

func (h *CashFlowHandler) Monthly(c *gin.Context) {
	months, err := h.list.Monthly(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, months)
}

func (h *CashFlowHandler) Create(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	e, err := h.create.Execute(c.Request.Context(), actorID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, e)
}

func (h *CashFlowHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.remove.Execute(c.Request.Context(), actorID(c), id); err != nil {
		respondError(c, err)
		return
	}
	httpresp.NoContent(c)
}
