package transactions

import (
	"context"
	"errors"

	"biletsfera/internal/events"
	"biletsfera/internal/tickets"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation names the seats a sale claims for one event.
type Reservation struct {
	EventID     uuid.UUID
	SeatNumbers []string
}

// SeatReserver is the slice of the seat subsystem the sale needs: the
// conditional seat flip that must run on the sale's own transaction
// handle.
type SeatReserver interface {
	Reserve(tx *gorm.DB, eventID uuid.UUID, seatNumbers []string) error
}

type Repository interface {
	// CreateWithReservations claims every reserved seat and writes the
	// sale record inside a single database transaction. Any seat
	// conflict rolls the whole thing back.
	CreateWithReservations(ctx context.Context, txn *Transaction, reservations []Reservation) error

	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Transaction, error)

	GetTicket(ctx context.Context, ticketID uuid.UUID) (*tickets.Ticket, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type repository struct {
	db    *gorm.DB
	seats SeatReserver
}

func NewRepository(db *gorm.DB, seats SeatReserver) Repository {
	return &repository{db: db, seats: seats}
}

func (r *repository) CreateWithReservations(ctx context.Context, txn *Transaction, reservations []Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, res := range reservations {
			if err := r.seats.Reserve(tx, res.EventID, res.SeatNumbers); err != nil {
				return err
			}
		}
		return tx.Create(txn).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	var txn Transaction
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("id = ?", id).
		First(&txn).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	var txns []Transaction
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("user_id = ?", userID).
		Order("sale_date DESC").
		Find(&txns).Error
	return txns, err
}

func (r *repository) GetTicket(ctx context.Context, ticketID uuid.UUID) (*tickets.Ticket, error) {
	var ticket tickets.Ticket
	err := r.db.WithContext(ctx).Where("id = ?", ticketID).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) GetEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error) {
	var event events.Event
	err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *repository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
