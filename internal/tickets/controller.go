package tickets

import (
	"net/http"

	"biletsfera/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateTicket handles POST /api/ticket
func (ctrl *Controller) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	ticket, err := ctrl.service.CreateTicket(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket created", ticket)
}

// GetTicket handles GET /api/tickets/:id
func (ctrl *Controller) GetTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, nil)
		return
	}

	ticket, err := ctrl.service.GetTicket(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Ticket retrieved", ticket)
}

// GetTicketsForEvent handles GET /api/tickets/by-event/:eventId
func (ctrl *Controller) GetTicketsForEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	list, err := ctrl.service.GetTicketsForEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Tickets retrieved", list)
}

// UpdateTicket handles PUT /api/ticket/:id
func (ctrl *Controller) UpdateTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, nil)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	ticket, err := ctrl.service.UpdateTicket(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Ticket updated", ticket)
}
