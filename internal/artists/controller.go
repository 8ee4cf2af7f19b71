package artists

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

// CreateArtist handles POST /api/artist
func (ctrl *Controller) CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	artist, err := ctrl.service.CreateArtist(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Artist created", artist)
}

// GetArtist handles GET /api/artists/:id
func (ctrl *Controller) GetArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid artist ID", nil, nil)
		return
	}

	artist, err := ctrl.service.GetArtist(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Artist retrieved", artist)
}

// GetAllArtists handles GET /api/artists
func (ctrl *Controller) GetAllArtists(c *gin.Context) {
	list, err := ctrl.service.GetAllArtists(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Artists retrieved", list)
}
