package cart

import (
	"context"
	"errors"

	"biletsfera/internal/events"
	"biletsfera/internal/tickets"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	AddTicket(ctx context.Context, userID, eventID, ticketID uuid.UUID, quantity int) error
	RemoveTicket(ctx context.Context, userID, eventID, ticketID uuid.UUID) error
	GetCartItems(ctx context.Context, userID uuid.UUID) ([]CartItem, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error

	GetTicket(ctx context.Context, ticketID uuid.UUID) (*tickets.Ticket, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// AddTicket bumps the line quantity for an existing (cart, ticket) pair
// or creates the cart item and line on first add. The whole find-or-create
// runs in one transaction so concurrent adds for the same user converge.
func (r *repository) AddTicket(ctx context.Context, userID, eventID, ticketID uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item CartItem
		err := tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = CartItem{UserID: userID, EventID: eventID}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var line CartTicketLine
		err = tx.Where("cart_item_id = ? AND ticket_id = ?", item.ID, ticketID).First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line = CartTicketLine{CartItemID: item.ID, TicketID: ticketID, Quantity: quantity}
			return tx.Create(&line).Error
		} else if err != nil {
			return err
		}

		return tx.Model(&line).UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error
	})
}

// RemoveTicket decrements the line quantity, deletes the line when it
// hits zero, and deletes the cart item once its last line is gone.
func (r *repository) RemoveTicket(ctx context.Context, userID, eventID, ticketID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item CartItem
		if err := tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&item).Error; err != nil {
			return err
		}

		var line CartTicketLine
		if err := tx.Where("cart_item_id = ? AND ticket_id = ?", item.ID, ticketID).First(&line).Error; err != nil {
			return err
		}

		if line.Quantity > 1 {
			return tx.Model(&line).UpdateColumn("quantity", gorm.Expr("quantity - 1")).Error
		}

		if err := tx.Delete(&line).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&CartTicketLine{}).Where("cart_item_id = ?", item.ID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Delete(&item).Error
		}
		return nil
	})
}

func (r *repository) GetCartItems(ctx context.Context, userID uuid.UUID) ([]CartItem, error) {
	var items []CartItem
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uuid.UUID
		if err := tx.Model(&CartItem{}).Where("user_id = ?", userID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("cart_item_id IN ?", ids).Delete(&CartTicketLine{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&CartItem{}).Error
	})
}

func (r *repository) GetTicket(ctx context.Context, ticketID uuid.UUID) (*tickets.Ticket, error) {
	var ticket tickets.Ticket
	if err := r.db.WithContext(ctx).Where("id = ?", ticketID).First(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) GetEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error) {
	var event events.Event
	if err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}
