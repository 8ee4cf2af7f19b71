package analytics

import (
	"biletsfera/internal/shared/utils/apperrors"
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

func (ctrl *Controller) TicketsSoldByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.Error(c, apperrors.BadRequest("invalid event id"))
		return
	}

	stats, err := ctrl.service.TicketsSoldForEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Tickets sold retrieved successfully", stats)
}

func (ctrl *Controller) TicketsSoldByOrganiser(c *gin.Context) {
	stats, err := ctrl.service.TicketsSoldForOrganiser(c.Request.Context(), c.Param("organiserName"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Tickets sold retrieved successfully", stats)
}

func (ctrl *Controller) EarningsByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.Error(c, apperrors.BadRequest("invalid event id"))
		return
	}

	stats, err := ctrl.service.EarningsForEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Earnings retrieved successfully", stats)
}

func (ctrl *Controller) EarningsByOrganiser(c *gin.Context) {
	stats, err := ctrl.service.EarningsForOrganiser(c.Request.Context(), c.Param("organiserName"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Earnings retrieved successfully", stats)
}

func (ctrl *Controller) ViewsByOrganiser(c *gin.Context) {
	stats, err := ctrl.service.ViewsForOrganiser(c.Request.Context(), c.Param("organiserName"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Views retrieved successfully", stats)
}

func (ctrl *Controller) SaleData(c *gin.Context) {
	data, err := ctrl.service.SaleDataForOrganiser(c.Request.Context(), c.Param("organiserName"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Sale data retrieved successfully", data)
}
