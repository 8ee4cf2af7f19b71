package artists

import (
	"biletsfera/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupArtistRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - anyone can browse artists
	publicArtists := router.Group("/artists")
	{
		publicArtists.GET("", controller.GetAllArtists) // GET /api/artists
		publicArtists.GET("/:id", controller.GetArtist) // GET /api/artists/:id
	}

	// Creation is reserved for organisers/admins
	adminArtists := router.Group("/artist")
	adminArtists.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminArtists.POST("", controller.CreateArtist) // POST /api/artist
	}
}
