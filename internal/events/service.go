package events

import (
	"context"
	"errors"

	"biletsfera/internal/artists"
	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/internal/tickets"
	"biletsfera/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeatService creates the per-event seat map at event creation time
// (interface to avoid a package cycle with seats)
type SeatService interface {
	CreateSeatMap(ctx context.Context, eventID uuid.UUID, seatNumbers []string) error
}

type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	GetAllEvents(ctx context.Context) ([]EventResponse, error)
	GetEventsByOrganiser(ctx context.Context, organiser string) ([]EventResponse, error)

	// Social engine
	ToggleReaction(ctx context.Context, eventID, userID uuid.UUID, actionType string) (*ToggleReactionResponse, error)
	GetReactionCount(ctx context.Context, eventID uuid.UUID, actionType string) (*ReactionCountResponse, error)
	IncrementViews(ctx context.Context, eventID uuid.UUID) bool
	GetReactedEvents(ctx context.Context, userID uuid.UUID, actionType string) ([]EventResponse, error)
}

type service struct {
	repo        Repository
	seatService SeatService
}

func NewService(repo Repository) *service {
	return &service{repo: repo}
}

// SetSeatService injects the seat map dependency
func (s *service) SetSeatService(seatService SeatService) {
	s.seatService = seatService
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	event := &Event{
		Title:          req.Title,
		Image:          req.Image,
		Text:           req.Text,
		AdditionalText: req.AdditionalText,
		Organiser:      req.Organiser,
		Date:           req.Date,
		Location:       req.Location,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
	}

	if event.RequiresSeatManagement() && len(req.SeatNumbers) == 0 {
		return nil, apperrors.BadRequest("seat numbers are required for reserved-seating events")
	}
	if !event.RequiresSeatManagement() && len(req.SeatNumbers) > 0 {
		return nil, apperrors.BadRequest("seat numbers are only allowed for reserved-seating events")
	}

	for _, raw := range req.ArtistIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.BadRequest("invalid artist ID: " + raw)
		}
		event.Artists = append(event.Artists, artistRef(id))
	}

	for _, t := range req.Tickets {
		if t.Price.IsNegative() {
			return nil, apperrors.BadRequest("ticket price cannot be negative")
		}
		event.Tickets = append(event.Tickets, tickets.Ticket{
			Type:      t.Type,
			Price:     t.Price,
			DayOfWeek: t.DayOfWeek,
			Date:      t.Date,
		})
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, apperrors.Internal("failed to create event", err)
	}

	// Seat map is created exactly once, together with the event
	if event.RequiresSeatManagement() && s.seatService != nil {
		if err := s.seatService.CreateSeatMap(ctx, event.ID, req.SeatNumbers); err != nil {
			return nil, apperrors.Internal("failed to create seat map", err)
		}
	}

	logger.GetDefault().LogEventCreated(ctx, event.ID.String(), event.Organiser)

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("event not found")
		}
		return nil, apperrors.Internal("failed to load event", err)
	}

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetAllEvents(ctx context.Context) ([]EventResponse, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list events", err)
	}
	return toResponses(list), nil
}

func (s *service) GetEventsByOrganiser(ctx context.Context, organiser string) ([]EventResponse, error) {
	list, err := s.repo.GetByOrganiser(ctx, organiser)
	if err != nil {
		return nil, apperrors.Internal("failed to list organiser events", err)
	}
	return toResponses(list), nil
}

// ToggleReaction flips the user's like/follow on the event: a repeated
// action by the same user removes the earlier one (set semantics)
func (s *service) ToggleReaction(ctx context.Context, eventID, userID uuid.UUID, actionType string) (*ToggleReactionResponse, error) {
	if !IsValidReactionType(actionType) {
		return nil, apperrors.BadRequest("action type must be 'like' or 'follow'")
	}

	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("event not found")
		}
		return nil, apperrors.Internal("failed to load event", err)
	}

	active, err := s.repo.ToggleReaction(ctx, eventID, userID, ReactionType(actionType))
	if err != nil {
		return nil, apperrors.Internal("failed to toggle reaction", err)
	}

	return &ToggleReactionResponse{
		EventID: eventID.String(),
		UserID:  userID.String(),
		Type:    actionType,
		Active:  active,
	}, nil
}

func (s *service) GetReactionCount(ctx context.Context, eventID uuid.UUID, actionType string) (*ReactionCountResponse, error) {
	if !IsValidReactionType(actionType) {
		return nil, apperrors.BadRequest("action type must be 'like' or 'follow'")
	}

	count, err := s.repo.ReactionCount(ctx, eventID, ReactionType(actionType))
	if err != nil {
		return nil, apperrors.Internal("failed to count reactions", err)
	}

	return &ReactionCountResponse{
		EventID: eventID.String(),
		Type:    actionType,
		Count:   count,
	}, nil
}

// IncrementViews bumps the view counter; a missing event is reported as
// false rather than an error
func (s *service) IncrementViews(ctx context.Context, eventID uuid.UUID) bool {
	found, err := s.repo.IncrementViews(ctx, eventID)
	if err != nil {
		return false
	}
	return found
}

func (s *service) GetReactedEvents(ctx context.Context, userID uuid.UUID, actionType string) ([]EventResponse, error) {
	if !IsValidReactionType(actionType) {
		return nil, apperrors.BadRequest("action type must be 'like' or 'follow'")
	}

	ids, err := s.repo.GetUserReactions(ctx, userID, ReactionType(actionType))
	if err != nil {
		return nil, apperrors.Internal("failed to load reactions", err)
	}

	responses := make([]EventResponse, 0, len(ids))
	for _, id := range ids {
		event, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, apperrors.Internal("failed to load event", err)
		}
		responses = append(responses, event.ToResponse())
	}
	return responses, nil
}

// artistRef builds an association stub so gorm links the join row
// without rewriting the artist itself
func artistRef(id uuid.UUID) artists.Artist {
	return artists.Artist{ID: id}
}

func toResponses(list []Event) []EventResponse {
	responses := make([]EventResponse, 0, len(list))
	for i := range list {
		responses = append(responses, list[i].ToResponse())
	}
	return responses
}
