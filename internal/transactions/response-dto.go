package transactions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID        uuid.UUID                 `json:"id"`
	UserID    uuid.UUID                 `json:"userId"`
	SaleDate  time.Time                 `json:"saleDate"`
	TotalCost decimal.Decimal           `json:"totalCost"`
	Status    Status                    `json:"status"`
	Lines     []TransactionLineResponse `json:"lines"`
}

type TransactionLineResponse struct {
	TicketID         uuid.UUID       `json:"ticketId"`
	EventID          uuid.UUID       `json:"eventId"`
	Count            int             `json:"count"`
	SingleTicketCost decimal.Decimal `json:"singleTicketCost"`
	LineCost         decimal.Decimal `json:"lineCost"`
	SeatNumbers      []string        `json:"seatNumbers,omitempty"`
}

func (t *Transaction) ToResponse() TransactionResponse {
	lines := make([]TransactionLineResponse, 0, len(t.Lines))
	for _, l := range t.Lines {
		lines = append(lines, TransactionLineResponse{
			TicketID:         l.TicketID,
			EventID:          l.EventID,
			Count:            l.Count,
			SingleTicketCost: l.SingleTicketCost,
			LineCost:         l.LineCost(),
			SeatNumbers:      l.SeatNumbers,
		})
	}

	return TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		SaleDate:  t.SaleDate,
		TotalCost: t.TotalCost,
		Status:    t.Status,
		Lines:     lines,
	}
}
