package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/sale"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	ucSale "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/sale"
)

type SaleHandler struct {
	finalize *ucSale.FinalizeSale
	list     *ucSale.ListSales
}

func NewSaleHandler(finalize *ucSale.FinalizeSale, list *ucSale.ListSales) *SaleHandler {
	return &SaleHandler{finalize: finalize, list: list}
}

// Create finalizes the cart for the logged-in seller.
func (h *SaleHandler) Create(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	s, err := h.finalize.Execute(c.Request.Context(), actorID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, s)
}

// List accepts ?vendedorId= to narrow to one seller.
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.list.Execute(c.Request.Context(), cast.ToUint(c.Query("vendedorId")))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, sales)
}

func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.list.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SaleHandler) Stats(c *gin.Context) {
	st, err := h.list.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, st)
}

// PaymentMethods lists the accepted payment methods.
func (h *SaleHandler) PaymentMethods(c *gin.Context) {
	httpresp.List(c, domain.PaymentMethods)
}
