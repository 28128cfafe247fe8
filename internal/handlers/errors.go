package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/middleware"
)

type businessStatus struct {
	status  int
	message string
}

var businessErrors = map[string]businessStatus{
	"time_conflict":         {http.StatusConflict, "Conflito de horário com outro agendamento."},
	"last_admin":            {http.StatusConflict, "Não é possível remover ou rebaixar o último administrador."},
	"insufficient_stock":    {http.StatusConflict, "Estoque insuficiente."},
	"empty_cart":            {http.StatusBadRequest, "Adicione pelo menos um produto à venda."},
	"invalid_status":        {http.StatusBadRequest, "Status inválido."},
	"invalid_credentials":   {http.StatusUnauthorized, "Usuário ou senha inválidos."},
	"client_not_found":      {http.StatusNotFound, "Cliente não encontrado."},
	"product_not_found":     {http.StatusNotFound, "Produto não encontrado."},
	"sale_not_found":        {http.StatusNotFound, "Venda não encontrada."},
	"cashflow_not_found":    {http.StatusNotFound, "Lançamento não encontrado."},
	"service_not_found":     {http.StatusNotFound, "Serviço não encontrado."},
	"appointment_not_found": {http.StatusNotFound, "Agendamento não encontrado."},
	"user_not_found":        {http.StatusNotFound, "Usuário não encontrado."},
}

// respondError maps use case errors to the JSON error body. Anything that
// is neither a validation nor a business error is a storage failure.
func respondError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve)
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		bs, known := businessErrors[be.Code]
		if !known {
			bs = businessStatus{http.StatusBadRequest, "Operação não permitida."}
		}
		c.JSON(bs.status, httperr.HTTPError{
			Code:    be.Code,
			Message: bs.message,
			Details: be.Details,
		})
		return
	}

	_ = c.Error(err)
	zap.L().Error("storage error",
		zap.String("request_id", c.GetString(middleware.ContextRequestID)),
		zap.Error(err),
	)
	httperr.Internal(c, "storage_error", "Erro ao acessar os dados.")
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}

// parseID reads the :id path parameter, writing 400 when it is not a
// positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

func actorID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextUserID)
}
