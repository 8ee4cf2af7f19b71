package seats

import (
	"context"
	"strings"

	"biletsfera/internal/shared/utils/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateSeatMap(ctx context.Context, eventID uuid.UUID, seatNumbers []string) error
	GetSeatMap(ctx context.Context, eventID uuid.UUID) (*SeatMapResponse, error)
	Reserve(tx *gorm.DB, eventID uuid.UUID, seatNumbers []string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateSeatMap(ctx context.Context, eventID uuid.UUID, seatNumbers []string) error {
	if len(seatNumbers) == 0 {
		return apperrors.BadRequest("seat map requires at least one seat number")
	}

	seen := make(map[string]struct{}, len(seatNumbers))
	seats := make([]Seat, 0, len(seatNumbers))
	for _, sn := range seatNumbers {
		sn = strings.TrimSpace(sn)
		if sn == "" {
			return apperrors.BadRequest("seat numbers cannot be empty")
		}
		if _, dup := seen[sn]; dup {
			return apperrors.BadRequest("duplicate seat number: " + sn)
		}
		seen[sn] = struct{}{}
		seats = append(seats, Seat{
			EventID:    eventID,
			SeatNumber: sn,
			Available:  true,
		})
	}

	return s.repo.CreateSeats(ctx, seats)
}

func (s *service) GetSeatMap(ctx context.Context, eventID uuid.UUID) (*SeatMapResponse, error) {
	seats, err := s.repo.GetSeatsByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, apperrors.NotFound("no seat map for event")
	}

	resp := &SeatMapResponse{
		EventID: eventID,
		Seats:   make([]SeatResponse, 0, len(seats)),
	}
	for _, seat := range seats {
		resp.Seats = append(resp.Seats, SeatResponse{
			SeatNumber: seat.SeatNumber,
			Available:  seat.Available,
		})
		if seat.Available {
			resp.AvailableCount++
		}
	}
	resp.TotalCount = len(seats)

	return resp, nil
}

func (s *service) Reserve(tx *gorm.DB, eventID uuid.UUID, seatNumbers []string) error {
	return s.repo.Reserve(tx, eventID, seatNumbers)
}
