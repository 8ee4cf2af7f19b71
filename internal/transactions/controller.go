package transactions

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

func (ctrl *Controller) CreateTransaction(c *gin.Context) {
	authID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, apperrors.Unauthorized("authentication required"))
		return
	}
	userID, err := uuid.Parse(authID.(string))
	if err != nil {
		response.Error(c, apperrors.Unauthorized("invalid token subject"))
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	txn, err := ctrl.service.CreateTransaction(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction committed successfully", txn)
}

func (ctrl *Controller) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperrors.BadRequest("invalid transaction id"))
		return
	}

	txn, err := ctrl.service.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := requireOwnerOrAdmin(c, txn.UserID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Transaction retrieved successfully", txn)
}

func (ctrl *Controller) GetUserTransactions(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, apperrors.BadRequest("invalid user id"))
		return
	}

	if err := requireOwnerOrAdmin(c, userID); err != nil {
		response.Error(c, err)
		return
	}

	txns, err := ctrl.service.GetUserTransactions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Transactions retrieved successfully", txns)
}

func requireOwnerOrAdmin(c *gin.Context, ownerID uuid.UUID) error {
	authID, ok := c.Get("user_id")
	if !ok {
		return apperrors.Unauthorized("authentication required")
	}
	if role, _ := c.Get("user_role"); role == "admin" {
		return nil
	}
	if authID != ownerID.String() {
		return apperrors.Unauthorized("cannot access another user's transactions")
	}
	return nil
}
