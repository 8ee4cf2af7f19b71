package seats

import (
	"time"

	"github.com/google/uuid"
)

// Seat is one entry of a per-event seat map. Rows are created once, when
// the event is created; afterwards only the availability flag changes.
type Seat struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID    uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_event_seat" json:"event_id"`
	SeatNumber string    `gorm:"not null;uniqueIndex:idx_event_seat" json:"seat_number"`
	Available  bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// SeatMapResponse is the availability listing for display
type SeatMapResponse struct {
	EventID        uuid.UUID      `json:"event_id"`
	Seats          []SeatResponse `json:"seats"`
	AvailableCount int            `json:"available_count"`
	TotalCount     int            `json:"total_count"`
}

type SeatResponse struct {
	SeatNumber string `json:"seat_number"`
	Available  bool   `json:"available"`
}
