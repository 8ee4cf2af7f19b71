package tickets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Ticket, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]Ticket, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	EventExists(ctx context.Context, eventID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ticket *Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Ticket, error) {
	var result []Ticket
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&result).Error
	return result, err
}

func (r *repository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]Ticket, error) {
	var result []Ticket
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&result).Error
	return result, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Ticket{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) EventExists(ctx context.Context, eventID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("events").Where("id = ?", eventID).Count(&count).Error
	return count > 0, err
}
