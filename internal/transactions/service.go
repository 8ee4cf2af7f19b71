package transactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"biletsfera/internal/shared/constants"
	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/pkg/cache"
	"biletsfera/pkg/logger"
	"biletsfera/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalePublisher broadcasts committed sales to the notification
// pipeline. Publishing happens after commit and never affects the
// sale outcome.
type SalePublisher interface {
	PublishSaleRecorded(ctx context.Context, txn *Transaction) error
}

// CartCleaner empties a user's cart once their checkout commits.
type CartCleaner interface {
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type Service interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *CreateTransactionRequest) (*TransactionResponse, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionResponse, error)
	GetUserTransactions(ctx context.Context, userID uuid.UUID) ([]TransactionResponse, error)
}

type service struct {
	repo      Repository
	publisher SalePublisher
	cart      CartCleaner
	cache     cache.Service
	log       *logger.Logger
}

func NewService(repo Repository, publisher SalePublisher, cart CartCleaner, cacheService cache.Service, log *logger.Logger) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		cart:      cart,
		cache:     cacheService,
		log:       log,
	}
}

// CreateTransaction runs the checkout: validate the requested items,
// snapshot ticket prices, claim reserved seats and write the sale
// record in one atomic scope. Either everything commits or nothing
// does.
func (s *service) CreateTransaction(ctx context.Context, userID uuid.UUID, req *CreateTransactionRequest) (*TransactionResponse, error) {
	status := StatusStarted

	abort := func(err error) (*TransactionResponse, error) {
		status = StatusAborted
		metrics.RecordCheckout("aborted")
		s.log.LogTransactionAborted(ctx, userID.String(), err)
		return nil, err
	}

	advance := func(next Status) error {
		if !status.CanTransitionTo(next) {
			return apperrors.Internal("invalid checkout state", nil)
		}
		status = next
		return nil
	}

	if err := advance(StatusValidating); err != nil {
		return abort(err)
	}

	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return abort(err)
	}
	if !exists {
		return abort(apperrors.NotFound("user not found"))
	}

	lines, reservations, totalCost, err := s.buildLines(ctx, req)
	if err != nil {
		return abort(err)
	}

	if err := advance(StatusReserving); err != nil {
		return abort(err)
	}

	txn := &Transaction{
		UserID:    userID,
		SaleDate:  time.Now().UTC(),
		TotalCost: totalCost,
		Status:    StatusCommitted,
		Lines:     lines,
	}

	if err := s.repo.CreateWithReservations(ctx, txn, reservations); err != nil {
		if apperrors.KindOf(err) == apperrors.KindConflict {
			for _, res := range reservations {
				s.log.LogSeatConflict(ctx, res.EventID.String(), res.SeatNumbers)
			}
		}
		return abort(err)
	}
	// Reserving and persisting share one atomic scope, so the walk
	// through PERSISTING happens right after the commit returns
	if err := advance(StatusPersisting); err != nil {
		return abort(err)
	}
	if err := advance(StatusCommitted); err != nil {
		return abort(err)
	}

	var seatCount int
	for _, res := range reservations {
		seatCount += len(res.SeatNumbers)
	}
	metrics.RecordCheckout("committed")
	if seatCount > 0 {
		metrics.RecordSeatsReserved(seatCount)
	}
	s.log.LogTransactionCommitted(ctx, txn.ID.String(), userID.String(), totalCost.StringFixed(2))

	// Committed rows change every aggregate, so drop the cached stats
	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, constants.StatsPattern()); err != nil {
			s.log.Warn("failed to invalidate stats cache", "error", err)
		}
	}

	if s.cart != nil {
		if err := s.cart.ClearCart(ctx, userID); err != nil {
			s.log.Warn("failed to clear cart after checkout", "user_id", userID.String(), "error", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishSaleRecorded(ctx, txn); err != nil {
			s.log.Warn("failed to publish sale record", "transaction_id", txn.ID.String(), "error", err)
		}
	}

	resp := txn.ToResponse()
	return &resp, nil
}

// buildLines validates each requested item against its ticket and
// event, snapshots the current price and merges seat claims per event.
func (s *service) buildLines(ctx context.Context, req *CreateTransactionRequest) ([]TransactionLine, []Reservation, decimal.Decimal, error) {
	if len(req.Tickets) == 0 {
		return nil, nil, decimal.Zero, apperrors.BadRequest("transaction requires at least one item")
	}

	lines := make([]TransactionLine, 0, len(req.Tickets))
	seatsByEvent := make(map[uuid.UUID][]string)
	eventOrder := make([]uuid.UUID, 0)
	claimed := make(map[uuid.UUID]map[string]struct{})
	totalCost := decimal.Zero

	for _, item := range req.Tickets {
		ticketID, err := uuid.Parse(item.TicketID)
		if err != nil {
			return nil, nil, decimal.Zero, apperrors.BadRequest("invalid ticket id: " + item.TicketID)
		}
		if item.Count < 1 {
			return nil, nil, decimal.Zero, apperrors.BadRequest("ticket count must be at least 1")
		}

		ticket, err := s.repo.GetTicket(ctx, ticketID)
		if err != nil {
			return nil, nil, decimal.Zero, err
		}
		if ticket == nil {
			return nil, nil, decimal.Zero, apperrors.NotFound("ticket not found: " + item.TicketID)
		}

		event, err := s.repo.GetEvent(ctx, ticket.EventID)
		if err != nil {
			return nil, nil, decimal.Zero, err
		}
		if event == nil {
			return nil, nil, decimal.Zero, apperrors.NotFound("event not found for ticket: " + item.TicketID)
		}
		if item.EventID != "" && item.EventID != event.ID.String() {
			return nil, nil, decimal.Zero, apperrors.BadRequest("ticket does not belong to the given event")
		}

		if event.RequiresSeatManagement() {
			if len(item.SeatNumbers) != item.Count {
				return nil, nil, decimal.Zero, apperrors.BadRequest(
					fmt.Sprintf("event %q requires exactly one seat per ticket", event.Title))
			}
			if claimed[event.ID] == nil {
				claimed[event.ID] = make(map[string]struct{})
			}
			for _, sn := range item.SeatNumbers {
				if sn == "" {
					return nil, nil, decimal.Zero, apperrors.BadRequest("seat numbers cannot be empty")
				}
				if _, dup := claimed[event.ID][sn]; dup {
					return nil, nil, decimal.Zero, apperrors.BadRequest("duplicate seat in request: " + sn)
				}
				claimed[event.ID][sn] = struct{}{}
			}
			if _, seen := seatsByEvent[event.ID]; !seen {
				eventOrder = append(eventOrder, event.ID)
			}
			seatsByEvent[event.ID] = append(seatsByEvent[event.ID], item.SeatNumbers...)
		} else if len(item.SeatNumbers) > 0 {
			return nil, nil, decimal.Zero, apperrors.BadRequest(
				fmt.Sprintf("event %q does not support seat selection", event.Title))
		}

		lines = append(lines, TransactionLine{
			TicketID:         ticket.ID,
			EventID:          event.ID,
			Count:            item.Count,
			SingleTicketCost: ticket.Price,
			SeatNumbers:      item.SeatNumbers,
		})
		totalCost = totalCost.Add(ticket.Price.Mul(decimal.NewFromInt(int64(item.Count))))
	}

	reservations := make([]Reservation, 0, len(eventOrder))
	for _, eventID := range eventOrder {
		reservations = append(reservations, Reservation{
			EventID:     eventID,
			SeatNumbers: seatsByEvent[eventID],
		})
	}

	return lines, reservations, totalCost, nil
}

func (s *service) GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionResponse, error) {
	txn, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("transaction not found")
	} else if err != nil {
		return nil, err
	}
	resp := txn.ToResponse()
	return &resp, nil
}

func (s *service) GetUserTransactions(ctx context.Context, userID uuid.UUID) ([]TransactionResponse, error) {
	txns, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, txns[i].ToResponse())
	}
	return responses, nil
}
