package events

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetAll(ctx context.Context) ([]Event, error)
	GetByOrganiser(ctx context.Context, organiser string) ([]Event, error)

	// Social engine
	IncrementViews(ctx context.Context, id uuid.UUID) (bool, error)
	ToggleReaction(ctx context.Context, eventID, userID uuid.UUID, reaction ReactionType) (bool, error)
	ReactionCount(ctx context.Context, eventID uuid.UUID, reaction ReactionType) (int64, error)
	GetUserReactions(ctx context.Context, userID uuid.UUID, reaction ReactionType) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Artists").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Event, error) {
	var result []Event
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Artists").
		Order("created_at DESC").
		Find(&result).Error
	return result, err
}

func (r *repository) GetByOrganiser(ctx context.Context, organiser string) ([]Event, error) {
	var result []Event
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Where("organiser = ?", organiser).
		Order("created_at DESC").
		Find(&result).Error
	return result, err
}

// IncrementViews bumps the counter in place. Returns false when the event
// does not exist; callers treat that as a silent miss, not an error.
func (r *repository) IncrementViews(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ToggleReaction inserts the reaction row if absent and deletes it if
// present. Returns true when the reaction is active after the call.
func (r *repository) ToggleReaction(ctx context.Context, eventID, userID uuid.UUID, reaction ReactionType) (bool, error) {
	var active bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing EventReaction
		err := tx.Where("event_id = ? AND user_id = ? AND type = ?", eventID, userID, reaction).
			First(&existing).Error

		switch {
		case err == nil:
			active = false
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			active = true
			return tx.Create(&EventReaction{
				EventID: eventID,
				UserID:  userID,
				Type:    reaction,
			}).Error
		default:
			return err
		}
	})
	return active, err
}

func (r *repository) ReactionCount(ctx context.Context, eventID uuid.UUID, reaction ReactionType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EventReaction{}).
		Where("event_id = ? AND type = ?", eventID, reaction).
		Count(&count).Error
	return count, err
}

func (r *repository) GetUserReactions(ctx context.Context, userID uuid.UUID, reaction ReactionType) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&EventReaction{}).
		Where("user_id = ? AND type = ?", userID, reaction).
		Pluck("event_id", &ids).Error
	return ids, err
}
