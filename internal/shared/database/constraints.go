package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes the query paths rely on. Seat uniqueness
// per (event, seat number) comes from the idx_event_seat unique index that
// AutoMigrate creates from the Seat model tags.
func MigrateConstraints(db *gorm.DB) error {
	// Index for transaction-line aggregation by event
	err := db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_transaction_lines_event_id
		ON transaction_lines (event_id);
	`).Error
	if err != nil {
		return err
	}

	// Index for the ticket-identifier joins used by organiser stats
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_transaction_lines_ticket_id
		ON transaction_lines (ticket_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
