package seats

import (
	"context"

	"biletsfera/internal/shared/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateSeats(ctx context.Context, seats []Seat) error
	GetSeatsByEventID(ctx context.Context, eventID uuid.UUID) ([]Seat, error)

	// Reserve runs on the caller's transaction handle so the seat flips
	// commit or roll back together with the enclosing sale
	Reserve(tx *gorm.DB, eventID uuid.UUID, seatNumbers []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSeats(ctx context.Context, seats []Seat) error {
	return r.db.WithContext(ctx).Create(&seats).Error
}

func (r *repository) GetSeatsByEventID(ctx context.Context, eventID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("seat_number ASC").
		Find(&seats).Error
	return seats, err
}

// Reserve flips the requested seats to unavailable with a single
// conditional update. When any seat is already taken the affected-row
// count falls short, the whole enclosing scope must abort, and no seat
// state changes. First committer wins under concurrent checkouts.
func (r *repository) Reserve(tx *gorm.DB, eventID uuid.UUID, seatNumbers []string) error {
	if len(seatNumbers) == 0 {
		return nil
	}

	res := tx.Model(&Seat{}).
		Where("event_id = ? AND seat_number IN ? AND available = ?", eventID, seatNumbers, true).
		Update("available", false)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected != int64(len(seatNumbers)) {
		return apperrors.Conflict("one or more requested seats are unavailable")
	}

	return nil
}
