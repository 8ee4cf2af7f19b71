package cart

import (
	"context"
	"errors"
	"time"

	"biletsfera/internal/shared/constants"
	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service interface {
	AddToCart(ctx context.Context, userID, eventID, ticketID uuid.UUID, quantity int) error
	RemoveFromCart(ctx context.Context, userID, eventID, ticketID uuid.UUID) error
	GetCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{repo: repo, cache: cacheService, cacheTTL: cacheTTL}
}

func cartCacheKey(userID uuid.UUID) string {
	return constants.CartKey(userID.String())
}

func (s *service) AddToCart(ctx context.Context, userID, eventID, ticketID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return apperrors.BadRequest("quantity must be at least 1")
	}

	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("user not found")
	}

	ticket, err := s.repo.GetTicket(ctx, ticketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("ticket not found")
	} else if err != nil {
		return err
	}
	if ticket.EventID != eventID {
		return apperrors.BadRequest("ticket does not belong to the given event")
	}

	if err := s.repo.AddTicket(ctx, userID, eventID, ticketID, quantity); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *service) RemoveFromCart(ctx context.Context, userID, eventID, ticketID uuid.UUID) error {
	err := s.repo.RemoveTicket(ctx, userID, eventID, ticketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("ticket not in cart")
	} else if err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	var resp CartResponse

	if s.cache != nil {
		err := s.cache.GetOrSet(ctx, cartCacheKey(userID), s.cacheTTL, func() (interface{}, error) {
			return s.buildCart(ctx, userID)
		}, &resp)
		if err != nil {
			return nil, err
		}
		return &resp, nil
	}

	built, err := s.buildCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return built, nil
}

func (s *service) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.ClearCart(ctx, userID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *service) buildCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &CartResponse{
		UserID:    userID,
		Items:     make([]CartItemResponse, 0, len(items)),
		TotalCost: decimal.Zero,
	}

	for _, item := range items {
		event, err := s.repo.GetEvent(ctx, item.EventID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// event was removed after it entered the cart; skip the stale item
			continue
		} else if err != nil {
			return nil, err
		}

		itemResp := CartItemResponse{
			EventID:    event.ID,
			EventTitle: event.Title,
			EventDate:  event.Date,
			Location:   event.Location,
			Image:      event.Image,
			Lines:      make([]CartLineResponse, 0, len(item.Lines)),
		}

		for _, line := range item.Lines {
			ticket, err := s.repo.GetTicket(ctx, line.TicketID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			} else if err != nil {
				return nil, err
			}

			lineCost := ticket.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			itemResp.Lines = append(itemResp.Lines, CartLineResponse{
				TicketID:   ticket.ID,
				TicketType: ticket.Type,
				Price:      ticket.Price,
				Quantity:   line.Quantity,
				LineCost:   lineCost,
			})
			resp.TotalCost = resp.TotalCost.Add(lineCost)
		}

		if len(itemResp.Lines) > 0 {
			resp.Items = append(resp.Items, itemResp)
		}
	}

	return resp, nil
}

func (s *service) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, cartCacheKey(userID))
	}
}
