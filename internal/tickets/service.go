package tickets

import (
	"context"
	"errors"

	"biletsfera/internal/shared/utils/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service interface {
	CreateTicket(ctx context.Context, req CreateTicketRequest) (*TicketResponse, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*TicketResponse, error)
	GetTicketsForEvent(ctx context.Context, eventID uuid.UUID) ([]TicketResponse, error)
	UpdateTicket(ctx context.Context, id uuid.UUID, req UpdateTicketRequest) (*TicketResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTicket(ctx context.Context, req CreateTicketRequest) (*TicketResponse, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperrors.BadRequest("invalid event ID")
	}

	if req.Price.IsNegative() {
		return nil, apperrors.BadRequest("ticket price cannot be negative")
	}

	exists, err := s.repo.EventExists(ctx, eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to check event", err)
	}
	if !exists {
		return nil, apperrors.NotFound("event not found")
	}

	ticket := &Ticket{
		EventID:   eventID,
		Type:      req.Type,
		Price:     req.Price,
		DayOfWeek: req.DayOfWeek,
		Date:      req.Date,
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, apperrors.Internal("failed to create ticket", err)
	}

	resp := ticket.ToResponse()
	return &resp, nil
}

func (s *service) GetTicket(ctx context.Context, id uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("ticket not found")
		}
		return nil, apperrors.Internal("failed to load ticket", err)
	}

	resp := ticket.ToResponse()
	return &resp, nil
}

func (s *service) GetTicketsForEvent(ctx context.Context, eventID uuid.UUID) ([]TicketResponse, error) {
	list, err := s.repo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to list tickets", err)
	}

	responses := make([]TicketResponse, 0, len(list))
	for i := range list {
		responses = append(responses, list[i].ToResponse())
	}
	return responses, nil
}

// UpdateTicket changes the listed price or labels. Committed sales are not
// touched; they carry their own price snapshot.
func (s *service) UpdateTicket(ctx context.Context, id uuid.UUID, req UpdateTicketRequest) (*TicketResponse, error) {
	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Price != nil {
		if req.Price.LessThan(decimal.Zero) {
			return nil, apperrors.BadRequest("ticket price cannot be negative")
		}
		updates["price"] = *req.Price
	}
	if req.DayOfWeek != nil {
		updates["day_of_week"] = *req.DayOfWeek
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}

	if len(updates) == 0 {
		return nil, apperrors.BadRequest("no fields to update")
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, apperrors.Internal("failed to update ticket", err)
	}

	return s.GetTicket(ctx, id)
}
