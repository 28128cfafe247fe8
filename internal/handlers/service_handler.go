package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/service"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	ucService "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/service"
)

type ServiceHandler struct {
	save   *ucService.SaveService
	remove *ucService.DeleteService
	list   *ucService.ListServices
}

func NewServiceHandler(
	save *ucService.SaveService,
	remove *ucService.DeleteService,
	list *ucService.ListServices,
) *ServiceHandler {
	return &ServiceHandler{save: save, remove: remove, list: list}
}

// List accepts ?nome= and ?profissional=.
func (h *ServiceHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), domain.Filter{
		Name:         c.Query("nome"),
		Professional: c.Query("profissional"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *ServiceHandler) Stats(c *gin.Context) {
	st, err := h.list.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, st)
}

func (h *ServiceHandler) Professionals(c *gin.Context) {
	users, err := h.list.Professionals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	svc, err := h.save.Execute(c.Request.Context(), actorID(c), 0, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	svc, err := h.save.Execute(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
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
