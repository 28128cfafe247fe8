package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/user"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	ucUser "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/user"
)

type UserHandler struct {
	save   *ucUser.SaveUser
	remove *ucUser.DeleteUser
	list   *ucUser.ListUsers
}

func NewUserHandler(save *ucUser.SaveUser, remove *ucUser.DeleteUser, list *ucUser.ListUsers) *UserHandler {
	return &UserHandler{save: save, remove: remove, list: list}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) Performance(c *gin.Context) {
	perf, err := h.list.Performance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, perf)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	u, err := h.save.Execute(c.Request.Context(), actorID(c), 0, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Created(c, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	u, err := h.save.Execute(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
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
