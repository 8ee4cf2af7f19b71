package tickets

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket is a purchasable ticket type owned by exactly one event.
// Price here is the listed price; committed sales keep their own snapshot.
type Ticket struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID   uuid.UUID       `json:"event_id" gorm:"type:uuid;index;not null"`
	Type      string          `json:"type" gorm:"not null;size:100"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	DayOfWeek string          `json:"day_of_week" gorm:"size:20"`
	Date      string          `json:"date" gorm:"size:30"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) ToResponse() TicketResponse {
	return TicketResponse{
		ID:        t.ID.String(),
		EventID:   t.EventID.String(),
		Type:      t.Type,
		Price:     t.Price,
		DayOfWeek: t.DayOfWeek,
		Date:      t.Date,
	}
}

type TicketResponse struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	DayOfWeek string          `json:"day_of_week"`
	Date      string          `json:"date"`
}

type CreateTicketRequest struct {
	EventID   string          `json:"event_id" binding:"required,uuid"`
	Type      string          `json:"type" binding:"required,min=1,max=100"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	DayOfWeek string          `json:"day_of_week" binding:"omitempty,max=20"`
	Date      string          `json:"date" binding:"omitempty,max=30"`
}

type UpdateTicketRequest struct {
	Type      *string          `json:"type" binding:"omitempty,min=1,max=100"`
	Price     *decimal.Decimal `json:"price"`
	DayOfWeek *string          `json:"day_of_week" binding:"omitempty,max=20"`
	Date      *string          `json:"date" binding:"omitempty,max=30"`
}
