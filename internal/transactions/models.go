package transactions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the immutable sale record written at checkout. Costs
// are price snapshots taken at purchase time; later ticket price edits
// never touch committed rows.
type Transaction struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID         `json:"userId" gorm:"type:uuid;not null;index"`
	SaleDate  time.Time         `json:"saleDate" gorm:"not null"`
	TotalCost decimal.Decimal   `json:"totalCost" gorm:"type:numeric(12,2);not null"`
	Status    Status            `json:"status" gorm:"type:varchar(20);not null;default:'COMMITTED'"`
	Lines     []TransactionLine `json:"lines" gorm:"foreignKey:TransactionID"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type TransactionLine struct {
	ID               uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TransactionID    uuid.UUID       `json:"transactionId" gorm:"type:uuid;not null;index"`
	TicketID         uuid.UUID       `json:"ticketId" gorm:"type:uuid;not null;index"`
	EventID          uuid.UUID       `json:"eventId" gorm:"type:uuid;not null;index"`
	Count            int             `json:"count" gorm:"not null;check:count >= 1"`
	SingleTicketCost decimal.Decimal `json:"singleTicketCost" gorm:"type:numeric(12,2);not null"`
	SeatNumbers      []string        `json:"seatNumbers,omitempty" gorm:"serializer:json"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func (TransactionLine) TableName() string {
	return "transaction_lines"
}

// LineCost is the snapshot price multiplied by the ticket count.
func (l TransactionLine) LineCost() decimal.Decimal {
	return l.SingleTicketCost.Mul(decimal.NewFromInt(int64(l.Count)))
}
