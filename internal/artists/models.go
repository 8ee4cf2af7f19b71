package artists

import (
	"time"

	"github.com/google/uuid"
)

// Artist represents a performer referenced by events
type Artist struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Image     string    `json:"image" gorm:"size:500"`
	Text      string    `json:"text" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Artist) TableName() string {
	return "artists"
}

func (a *Artist) ToResponse() ArtistResponse {
	return ArtistResponse{
		ID:    a.ID.String(),
		Name:  a.Name,
		Image: a.Image,
		Text:  a.Text,
	}
}

type ArtistResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Text  string `json:"text"`
}

type CreateArtistRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Image string `json:"image" binding:"omitempty,url"`
	Text  string `json:"text" binding:"max=5000"`
}
