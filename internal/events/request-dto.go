package events

import "github.com/shopspring/decimal"

type CreateEventRequest struct {
	Title          string   `json:"title" binding:"required,min=3,max=255"`
	Image          string   `json:"image" binding:"omitempty,url"`
	Text           string   `json:"text" binding:"max=5000"`
	AdditionalText string   `json:"additional_text" binding:"max=5000"`
	Organiser      string   `json:"organiser" binding:"required,min=1,max=255"`
	Date           string   `json:"date" binding:"required,max=30"`
	Location       string   `json:"location" binding:"max=255"`
	Category       []string `json:"category"`
	SubCategory    []string `json:"sub_category"`
	ArtistIDs      []string `json:"artist_ids" binding:"omitempty,dive,uuid"`

	// Tickets created together with the event
	Tickets []InlineTicketRequest `json:"tickets"`

	// Seat map, required when category carries the reserved-seating marker;
	// seats are created exactly once, here
	SeatNumbers []string `json:"seat_numbers"`
}

type InlineTicketRequest struct {
	Type      string          `json:"type" binding:"required,min=1,max=100"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	DayOfWeek string          `json:"day_of_week" binding:"omitempty,max=20"`
	Date      string          `json:"date" binding:"omitempty,max=30"`
}
