package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	TicketsSoldForEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
	TicketsSoldForTickets(ctx context.Context, ticketIDs []uuid.UUID) (int64, error)
	EarningsForEvent(ctx context.Context, eventID uuid.UUID) (decimal.Decimal, error)
	EarningsForTickets(ctx context.Context, ticketIDs []uuid.UUID) (decimal.Decimal, error)
	ViewsForOrganiser(ctx context.Context, organiser string) (int64, error)
	OrganiserTicketIDs(ctx context.Context, organiser string) ([]uuid.UUID, error)
	OrganiserExists(ctx context.Context, organiser string) (bool, error)
	EventExists(ctx context.Context, eventID uuid.UUID) (bool, error)
	SaleRowsForTickets(ctx context.Context, ticketIDs []uuid.UUID) ([]SaleRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TicketsSoldForEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var sold int64
	err := r.db.WithContext(ctx).
		Table("transaction_lines").
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(count), 0)").
		Scan(&sold).Error
	return sold, err
}

// TicketsSoldForTickets sums sold counts over the given ticket ids.
// Organiser totals join through ticket membership, not event ids; the
// two aggregates can drift if a ticket is ever re-parented and that is
// accepted.
func (r *repository) TicketsSoldForTickets(ctx context.Context, ticketIDs []uuid.UUID) (int64, error) {
	if len(ticketIDs) == 0 {
		return 0, nil
	}
	var sold int64
	err := r.db.WithContext(ctx).
		Table("transaction_lines").
		Where("ticket_id IN ?", ticketIDs).
		Select("COALESCE(SUM(count), 0)").
		Scan(&sold).Error
	return sold, err
}

func (r *repository) EarningsForEvent(ctx context.Context, eventID uuid.UUID) (decimal.Decimal, error) {
	var earnings decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("transaction_lines").
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(count * single_ticket_cost), 0)").
		Scan(&earnings).Error
	return earnings, err
}

func (r *repository) EarningsForTickets(ctx context.Context, ticketIDs []uuid.UUID) (decimal.Decimal, error) {
	if len(ticketIDs) == 0 {
		return decimal.Zero, nil
	}
	var earnings decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("transaction_lines").
		Where("ticket_id IN ?", ticketIDs).
		Select("COALESCE(SUM(count * single_ticket_cost), 0)").
		Scan(&earnings).Error
	return earnings, err
}

func (r *repository) ViewsForOrganiser(ctx context.Context, organiser string) (int64, error) {
	var views int64
	err := r.db.WithContext(ctx).
		Table("events").
		Where("organiser = ?", organiser).
		Select("COALESCE(SUM(views), 0)").
		Scan(&views).Error
	return views, err
}

func (r *repository) OrganiserTicketIDs(ctx context.Context, organiser string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("tickets t").
		Joins("JOIN events e ON e.id = t.event_id").
		Where("e.organiser = ?", organiser).
		Pluck("t.id", &ids).Error
	return ids, err
}

func (r *repository) OrganiserExists(ctx context.Context, organiser string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("events").
		Where("organiser = ?", organiser).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EventExists(ctx context.Context, eventID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("events").
		Where("id = ?", eventID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SaleRowsForTickets(ctx context.Context, ticketIDs []uuid.UUID) ([]SaleRow, error) {
	if len(ticketIDs) == 0 {
		return nil, nil
	}
	var rows []SaleRow
	err := r.db.WithContext(ctx).
		Table("transaction_lines tl").
		Joins("JOIN transactions tr ON tr.id = tl.transaction_id").
		Where("tl.ticket_id IN ?", ticketIDs).
		Select("tl.ticket_id, tl.count, tl.single_ticket_cost, tr.sale_date").
		Order("tr.sale_date ASC").
		Scan(&rows).Error
	return rows, err
}
