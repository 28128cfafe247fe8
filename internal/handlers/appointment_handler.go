package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	changeStatusUC *ucAppointment.ChangeStatus
	deleteUC       *ucAppointment.DeleteAppointment
	listUC         *ucAppointment.ListAppointments
	statsUC        *ucAppointment.GetStats
	availabilityUC *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	changeStatusUC *ucAppointment.ChangeStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	statsUC *ucAppointment.GetStats,
	availabilityUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		changeStatusUC: changeStatusUC,
		deleteUC:       deleteUC,
		listUC:         listUC,
		statsUC:        statsUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), actorID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req domain.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	ap, err := h.changeStatusUC.Execute(c.Request.Context(), actorID(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deleteUC.Execute(c.Request.Context(), actorID(c), id); err != nil {
		respondError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// LIST
// ======================================================

// List accepts ?cliente=&data=&status=.
func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.listUC.Execute(c.Request.Context(), domain.Filter{
		Client: c.Query("cliente"),
		Date:   c.Query("data"),
		Status: c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AppointmentHandler) Stats(c *gin.Context) {
	st, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, st)
}

// Availability accepts ?servico=&data=.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		Service: c.Query("servico"),
		Date:    c.Query("data"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, slots)
}
