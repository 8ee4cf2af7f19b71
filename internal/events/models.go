package events

import (
	"time"

	"biletsfera/internal/artists"
	"biletsfera/internal/tickets"

	"github.com/google/uuid"
)

// SeatManagementCategory marks events whose tickets are bound to numbered
// seats. Checkout for such events must reserve seats atomically.
const SeatManagementCategory = "reserved-seating"

type Event struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title          string    `json:"title" gorm:"not null;size:255"`
	Image          string    `json:"image" gorm:"size:500"`
	Text           string    `json:"text" gorm:"type:text"`
	AdditionalText string    `json:"additional_text" gorm:"type:text"`
	Organiser      string    `json:"organiser" gorm:"index;not null;size:255"`
	Date           string    `json:"date" gorm:"size:30"`
	Location       string    `json:"location" gorm:"size:255"`
	Category       []string  `json:"category" gorm:"serializer:json"`
	SubCategory    []string  `json:"sub_category" gorm:"serializer:json"`
	Views          int       `json:"views" gorm:"default:0;check:views >= 0"`

	// Relationships
	Tickets []tickets.Ticket `json:"tickets,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`
	Artists []artists.Artist `json:"artists,omitempty" gorm:"many2many:event_artists;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for Event
func (Event) TableName() string {
	return "events"
}

// RequiresSeatManagement reports whether checkout must reserve numbered seats
func (e *Event) RequiresSeatManagement() bool {
	for _, c := range e.Category {
		if c == SeatManagementCategory {
			return true
		}
	}
	return false
}

// ReactionType distinguishes the two user-to-event relations
type ReactionType string

const (
	ReactionLike   ReactionType = "like"
	ReactionFollow ReactionType = "follow"
)

func IsValidReactionType(t string) bool {
	switch ReactionType(t) {
	case ReactionLike, ReactionFollow:
		return true
	default:
		return false
	}
}

// EventReaction is one user's like or follow of one event. The unique index
// gives set semantics; toggling inserts or deletes the row.
type EventReaction struct {
	ID      uuid.UUID    `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID uuid.UUID    `json:"event_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_event_user_reaction"`
	UserID  uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_user_reaction"`
	Type    ReactionType `json:"type" gorm:"type:varchar(10);not null;uniqueIndex:idx_event_user_reaction"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName sets the table name for EventReaction
func (EventReaction) TableName() string {
	return "event_reactions"
}
