package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem groups the tickets a user holds for a single event. One row
// per (user, event) pair; ticket quantities live on the lines.
type CartItem struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID        `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_event_cart"`
	EventID   uuid.UUID        `json:"eventId" gorm:"type:uuid;not null;uniqueIndex:idx_user_event_cart"`
	Lines     []CartTicketLine `json:"lines" gorm:"foreignKey:CartItemID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

type CartTicketLine struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CartItemID uuid.UUID `json:"cartItemId" gorm:"type:uuid;not null;uniqueIndex:idx_cart_ticket"`
	TicketID   uuid.UUID `json:"ticketId" gorm:"type:uuid;not null;uniqueIndex:idx_cart_ticket"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1;check:quantity >= 1"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (CartTicketLine) TableName() string {
	return "cart_ticket_lines"
}

// CartResponse is the resolved view of a user's cart with event and
// ticket details joined in, ready for checkout display.
type CartResponse struct {
	UserID    uuid.UUID          `json:"userId"`
	Items     []CartItemResponse `json:"items"`
	TotalCost decimal.Decimal    `json:"totalCost"`
}

type CartItemResponse struct {
	EventID    uuid.UUID          `json:"eventId"`
	EventTitle string             `json:"eventTitle"`
	EventDate  string             `json:"eventDate"`
	Location   string             `json:"location"`
	Image      string             `json:"image"`
	Lines      []CartLineResponse `json:"tickets"`
}

type CartLineResponse struct {
	TicketID   uuid.UUID       `json:"ticketId"`
	TicketType string          `json:"ticketType"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	LineCost   decimal.Decimal `json:"lineCost"`
}
