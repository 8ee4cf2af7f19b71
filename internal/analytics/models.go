package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketsSoldResponse struct {
	TicketsSold int64 `json:"ticketsSold"`
}

type EarningsResponse struct {
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

type ViewsResponse struct {
	TotalViews int64 `json:"totalViews"`
}

// SaleRow is one transaction line as fetched for the sale-data report,
// before bucketing.
type SaleRow struct {
	TicketID         uuid.UUID       `json:"ticketId"`
	Count            int             `json:"count"`
	SingleTicketCost decimal.Decimal `json:"singleTicketCost"`
	SaleDate         time.Time       `json:"saleDate"`
}

// SaleBucket is one day of an organiser's sales.
type SaleBucket struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	TicketsSold int64           `json:"ticketsSold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type SaleDataResponse struct {
	Organiser string       `json:"organiser"`
	Buckets   []SaleBucket `json:"saleData"`
}
