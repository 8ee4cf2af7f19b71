package transactions

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, authMiddleware gin.HandlerFunc) {
	txns := rg.Group("/transactions")
	txns.Use(authMiddleware)
	{
		txns.POST("/transaction", ctrl.CreateTransaction)
		txns.GET("/transaction/:id", ctrl.GetTransaction)
		txns.GET("/all/:userId", ctrl.GetUserTransactions)
	}
}
