package artists

import (
	"context"
	"errors"

	"biletsfera/internal/shared/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateArtist(ctx context.Context, req CreateArtistRequest) (*ArtistResponse, error)
	GetArtist(ctx context.Context, id uuid.UUID) (*ArtistResponse, error)
	GetAllArtists(ctx context.Context) ([]ArtistResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateArtist(ctx context.Context, req CreateArtistRequest) (*ArtistResponse, error) {
	artist := &Artist{
		Name:  req.Name,
		Image: req.Image,
		Text:  req.Text,
	}

	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, apperrors.Internal("failed to create artist", err)
	}

	resp := artist.ToResponse()
	return &resp, nil
}

func (s *service) GetArtist(ctx context.Context, id uuid.UUID) (*ArtistResponse, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("artist not found")
		}
		return nil, apperrors.Internal("failed to load artist", err)
	}

	resp := artist.ToResponse()
	return &resp, nil
}

func (s *service) GetAllArtists(ctx context.Context) ([]ArtistResponse, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list artists", err)
	}

	responses := make([]ArtistResponse, 0, len(list))
	for i := range list {
		responses = append(responses, list[i].ToResponse())
	}
	return responses, nil
}
