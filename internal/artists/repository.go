package artists

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Artist, error)
	GetAll(ctx context.Context) ([]Artist, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, artist *Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Artist, error) {
	var artist Artist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Artist, error) {
	var result []Artist
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&result).Error
	return result, err
}

func (r *repository) GetAll(ctx context.Context) ([]Artist, error) {
	var result []Artist
	err := r.db.WithContext(ctx).Order("name ASC").Find(&result).Error
	return result, err
}
