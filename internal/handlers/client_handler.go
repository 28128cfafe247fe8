package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/client"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	ucClient "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/client"
)

type ClientHandler struct {
	save   *ucClient.SaveClient
	remove *ucClient.DeleteClient
	list   *ucClient.ListClients
}

func NewClientHandler(
	save *ucClient.SaveClient,
	remove *ucClient.DeleteClient,
	list *ucClient.ListClients,
) *ClientHandler {
	return &ClientHandler{save: save, remove: remove, list: list}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	client, err := h.list.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, client)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	client, err := h.save.Execute(c.Request.Context(), actorID(c), 0, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	client, err := h.save.Execute(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
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
