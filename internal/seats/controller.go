package seats

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

func (ctrl *Controller) GetSeatMap(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperrors.BadRequest("invalid event id"))
		return
	}

	seatMap, err := ctrl.service.GetSeatMap(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Seat map retrieved successfully", seatMap)
}
