package cart

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

// cartParams pulls and validates the three path ids shared by the
// add and remove endpoints.
func cartParams(c *gin.Context) (userID, eventID, ticketID uuid.UUID, err error) {
	userID, err = uuid.Parse(c.Param("userId"))
	if err != nil {
		return userID, eventID, ticketID, apperrors.BadRequest("invalid user id")
	}
	eventID, err = uuid.Parse(c.Param("eventId"))
	if err != nil {
		return userID, eventID, ticketID, apperrors.BadRequest("invalid event id")
	}
	ticketID, err = uuid.Parse(c.Param("ticketId"))
	if err != nil {
		return userID, eventID, ticketID, apperrors.BadRequest("invalid ticket id")
	}
	return userID, eventID, ticketID, nil
}

// requireSelf rejects requests where the authenticated user tries to
// act on another user's cart. Admins pass through.
func requireSelf(c *gin.Context, userID uuid.UUID) error {
	authID, ok := c.Get("user_id")
	if !ok {
		return apperrors.Unauthorized("authentication required")
	}
	if role, _ := c.Get("user_role"); role == "admin" {
		return nil
	}
	if authID != userID.String() {
		return apperrors.Unauthorized("cannot access another user's cart")
	}
	return nil
}

func (ctrl *Controller) AddTicket(c *gin.Context) {
	userID, eventID, ticketID, err := cartParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := requireSelf(c, userID); err != nil {
		response.Error(c, err)
		return
	}

	req := AddTicketRequest{Quantity: 1}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperrors.BadRequest("invalid quantity"))
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
	}

	if err := ctrl.service.AddToCart(c.Request.Context(), userID, eventID, ticketID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Ticket added to cart", nil)
}

func (ctrl *Controller) RemoveTicket(c *gin.Context) {
	userID, eventID, ticketID, err := cartParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := requireSelf(c, userID); err != nil {
		response.Error(c, err)
		return
	}

	if err := ctrl.service.RemoveFromCart(c.Request.Context(), userID, eventID, ticketID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Ticket removed from cart", nil)
}

func (ctrl *Controller) GetCart(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, apperrors.BadRequest("invalid user id"))
		return
	}
	if err := requireSelf(c, userID); err != nil {
		response.Error(c, err)
		return
	}

	cart, err := ctrl.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Cart retrieved successfully", cart)
}
