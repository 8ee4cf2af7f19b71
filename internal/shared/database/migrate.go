package database

import (
	"biletsfera/internal/artists"
	"biletsfera/internal/cart"
	"biletsfera/internal/events"
	"biletsfera/internal/seats"
	"biletsfera/internal/tickets"
	"biletsfera/internal/transactions"
	"biletsfera/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&artists.Artist{},
		&events.Event{},
		&events.EventReaction{},
		&tickets.Ticket{},
		&seats.Seat{},
		&cart.CartItem{},
		&cart.CartTicketLine{},
		&transactions.Transaction{},
		&transactions.TransactionLine{},
	)
}
