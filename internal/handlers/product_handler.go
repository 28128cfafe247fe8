package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/product"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	ucProduct "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/product"
)

type ProductHandler struct {
	save   *ucProduct.SaveProduct
	remove *ucProduct.DeleteProduct
	list   *ucProduct.ListProducts
}

func NewProductHandler(
	save *ucProduct.SaveProduct,
	remove *ucProduct.DeleteProduct,
	list *ucProduct.ListProducts,
) *ProductHandler {
	return &ProductHandler{save: save, remove: remove, list: list}
}

// List accepts ?query= and ?lowStock=true.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.list.Execute(
		c.Request.Context(),
		c.Query("query"),
		cast.ToBool(c.Query("lowStock")),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.list.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Stats(c *gin.Context) {
	st, err := h.list.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, st)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	p, err := h.save.Execute(c.Request.Context(), actorID(c), 0, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	p, err := h.save.Execute(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
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
