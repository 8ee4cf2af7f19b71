package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, authMiddleware gin.HandlerFunc) {
	user := rg.Group("/user")
	{
		user.POST("/create", ctrl.Register)
		user.POST("/auth", ctrl.Login)
		user.POST("/auth/refresh", ctrl.Refresh)

		protected := user.Group("")
		protected.Use(authMiddleware)
		{
			protected.DELETE("/logout/:userId", ctrl.Logout)
			protected.GET("/profile", ctrl.GetProfile)
			protected.PUT("/password", ctrl.ChangePassword)
			protected.PUT("/preferences", ctrl.UpdatePreferences)
			protected.DELETE("/remove", ctrl.RemoveAccount)
		}
	}
}
