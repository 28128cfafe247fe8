package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ucAuth "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/auth"
)

type MeHandler struct {
	session *ucAuth.Session
}

func NewMeHandler(session *ucAuth.Session) *MeHandler {
	return &MeHandler{session: session}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.session.Me(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
