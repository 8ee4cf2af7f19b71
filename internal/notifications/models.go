package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecorded is the message emitted after a checkout commits. It is
// a snapshot of the sale, not a reference: consumers never need to
// read the database to act on it.
type SaleRecorded struct {
	TransactionID uuid.UUID          `json:"transactionId"`
	UserID        uuid.UUID          `json:"userId"`
	SaleDate      time.Time          `json:"saleDate"`
	TotalCost     decimal.Decimal    `json:"totalCost"`
	Lines         []SaleRecordedLine `json:"lines"`
	EmittedAt     time.Time          `json:"emittedAt"`
}

type SaleRecordedLine struct {
	TicketID         uuid.UUID       `json:"ticketId"`
	EventID          uuid.UUID       `json:"eventId"`
	Count            int             `json:"count"`
	SingleTicketCost decimal.Decimal `json:"singleTicketCost"`
	SeatNumbers      []string        `json:"seatNumbers,omitempty"`
}

func (s *SaleRecorded) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

func SaleRecordedFromJSON(data []byte) (*SaleRecorded, error) {
	var msg SaleRecorded
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// PartitionKey routes all of a user's sales to the same partition so
// per-user ordering holds.
func (s *SaleRecorded) PartitionKey() string {
	return s.UserID.String()
}
