package events

import (
	"time"

	"biletsfera/internal/artists"
	"biletsfera/internal/tickets"
)

type EventResponse struct {
	ID             string                   `json:"id"`
	Title          string                   `json:"title"`
	Image          string                   `json:"image"`
	Text           string                   `json:"text"`
	AdditionalText string                   `json:"additional_text"`
	Organiser      string                   `json:"organiser"`
	Date           string                   `json:"date"`
	Location       string                   `json:"location"`
	Category       []string                 `json:"category"`
	SubCategory    []string                 `json:"sub_category"`
	Views          int                      `json:"views"`
	SeatManaged    bool                     `json:"seat_managed"`
	Tickets        []tickets.TicketResponse `json:"tickets"`
	Artists        []artists.ArtistResponse `json:"artists"`
	CreatedAt      time.Time                `json:"created_at"`
}

type ReactionCountResponse struct {
	EventID string `json:"event_id"`
	Type    string `json:"type"`
	Count   int64  `json:"count"`
}

type ToggleReactionResponse struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Active  bool   `json:"active"` // true after the toggle added the reaction
}

func (e *Event) ToResponse() EventResponse {
	ticketResponses := make([]tickets.TicketResponse, 0, len(e.Tickets))
	for i := range e.Tickets {
		ticketResponses = append(ticketResponses, e.Tickets[i].ToResponse())
	}

	artistResponses := make([]artists.ArtistResponse, 0, len(e.Artists))
	for i := range e.Artists {
		artistResponses = append(artistResponses, e.Artists[i].ToResponse())
	}

	return EventResponse{
		ID:             e.ID.String(),
		Title:          e.Title,
		Image:          e.Image,
		Text:           e.Text,
		AdditionalText: e.AdditionalText,
		Organiser:      e.Organiser,
		Date:           e.Date,
		Location:       e.Location,
		Category:       e.Category,
		SubCategory:    e.SubCategory,
		Views:          e.Views,
		SeatManaged:    e.RequiresSeatManagement(),
		Tickets:        ticketResponses,
		Artists:        artistResponses,
		CreatedAt:      e.CreatedAt,
	}
}
