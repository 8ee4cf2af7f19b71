package transactions

import (
	"context"
	"errors"
	"testing"

	"biletsfera/internal/events"
	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/internal/tickets"
	"biletsfera/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	tickets map[uuid.UUID]*tickets.Ticket
	events  map[uuid.UUID]*events.Event
	users   map[uuid.UUID]bool

	created      *Transaction
	reservations []Reservation
	reserveErr   error
	getByIDErr   error
	stored       map[uuid.UUID]*Transaction
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tickets: make(map[uuid.UUID]*tickets.Ticket),
		events:  make(map[uuid.UUID]*events.Event),
		users:   make(map[uuid.UUID]bool),
		stored:  make(map[uuid.UUID]*Transaction),
	}
}

func (f *fakeRepo) CreateWithReservations(ctx context.Context, txn *Transaction, reservations []Reservation) error {
	if f.reserveErr != nil {
		// seat conflict aborts the whole scope: nothing persists
		return f.reserveErr
	}
	txn.ID = uuid.New()
	f.created = txn
	f.reservations = reservations
	f.stored[txn.ID] = txn
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	txn, ok := f.stored[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return txn, nil
}

func (f *fakeRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	var out []Transaction
	for _, txn := range f.stored {
		if txn.UserID == userID {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetTicket(ctx context.Context, ticketID uuid.UUID) (*tickets.Ticket, error) {
	return f.tickets[ticketID], nil
}

func (f *fakeRepo) GetEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error) {
	return f.events[eventID], nil
}

func (f *fakeRepo) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return f.users[userID], nil
}

type fakePublisher struct {
	published []*Transaction
}

func (f *fakePublisher) PublishSaleRecorded(ctx context.Context, txn *Transaction) error {
	f.published = append(f.published, txn)
	return nil
}

type fakeCart struct {
	cleared []uuid.UUID
}

func (f *fakeCart) ClearCart(ctx context.Context, userID uuid.UUID) error {
	f.cleared = append(f.cleared, userID)
	return nil
}

type checkoutFixture struct {
	repo      *fakeRepo
	publisher *fakePublisher
	cart      *fakeCart
	svc       Service

	userID        uuid.UUID
	seatedEventID uuid.UUID
	seatedTicket  uuid.UUID
	openEventID   uuid.UUID
	openTicket    uuid.UUID
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		repo:      newFakeRepo(),
		publisher: &fakePublisher{},
		cart:      &fakeCart{},
	}
	f.svc = NewService(f.repo, f.publisher, f.cart, nil, logger.New())

	f.userID = uuid.New()
	f.repo.users[f.userID] = true

	f.seatedEventID = uuid.New()
	f.repo.events[f.seatedEventID] = &events.Event{
		ID:       f.seatedEventID,
		Title:    "Piano Nights",
		Category: []string{"music", events.SeatManagementCategory},
	}
	f.seatedTicket = uuid.New()
	f.repo.tickets[f.seatedTicket] = &tickets.Ticket{
		ID:      f.seatedTicket,
		EventID: f.seatedEventID,
		Type:    "parterre",
		Price:   decimal.RequireFromString("149.50"),
	}

	f.openEventID = uuid.New()
	f.repo.events[f.openEventID] = &events.Event{
		ID:       f.openEventID,
		Title:    "Open Air",
		Category: []string{"music"},
	}
	f.openTicket = uuid.New()
	f.repo.tickets[f.openTicket] = &tickets.Ticket{
		ID:      f.openTicket,
		EventID: f.openEventID,
		Type:    "standard",
		Price:   decimal.RequireFromString("89.00"),
	}

	return f
}

func TestCreateTransactionCommitsSeatedAndOpenLines(t *testing.T) {
	f := newCheckoutFixture(t)

	resp, err := f.svc.CreateTransaction(context.Background(), f.userID, &CreateTransactionRequest{
		Tickets: []TransactionItemRequest{
			{TicketID: f.seatedTicket.String(), EventID: f.seatedEventID.String(), Count: 2, SeatNumbers: []string{"A1", "A2"}},
			{TicketID: f.openTicket.String(), Count: 3},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, StatusCommitted, resp.Status)
	assert.Len(t, resp.Lines, 2)

	// 2 × 149.50 + 3 × 89.00 = 566.00, exact
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("566.00")),
		"got total %s", resp.TotalCost)

	require.Len(t, f.repo.reservations, 1)
	assert.Equal(t, f.seatedEventID, f.repo.reservations[0].EventID)
	assert.ElementsMatch(t, []string{"A1", "A2"}, f.repo.reservations[0].SeatNumbers)

	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, resp.ID, f.publisher.published[0].ID)
	assert.Equal(t, []uuid.UUID{f.userID}, f.cart.cleared)
}

func TestCreateTransactionSnapshotsPriceAtPurchase(t *testing.T) {
	f := newCheckoutFixture(t)

	resp, err := f.svc.CreateTransaction(context.Background(), f.userID, &CreateTransactionRequest{
		Tickets: []TransactionItemRequest{{TicketID: f.openTicket.String(), Count: 1}},
	})
	require.NoError(t, err)

	// price edit after purchase must not move the committed snapshot
	f.repo.tickets[f.openTicket].Price = decimal.RequireFromString("999.99")

	got, err := f.svc.GetTransaction(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, got.Lines[0].SingleTicketCost.Equal(decimal.RequireFromString("89.00")))
}

func TestCreateTransactionSeatConflictAbortsEverything(t *testing.T) {
	f := newCheckoutFixture(t)
	f.repo.reserveErr = apperrors.Conflict("one or more requested seats are unavailable")

	resp, err := f.svc.CreateTransaction(context.Background(), f.userID, &CreateTransactionRequest{
		Tickets: []TransactionItemRequest{
			{TicketID: f.seatedTicket.String(), Count: 1, SeatNumbers: []string{"A1"}},
			{TicketID: f.openTicket.String(), Count: 1},
		},
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// nothing persisted, nothing published, cart untouched
	assert.Nil(t, f.repo.created)
	assert.Empty(t, f.publisher.published)
	assert.Empty(t, f.cart.cleared)
}

func TestCreateTransactionValidation(t *testing.T) {
	f := newCheckoutFixture(t)

	tests := []struct {
		name string
		req  CreateTransactionRequest
		kind apperrors.Kind
	}{
		{
			name: "no items",
			req:  CreateTransactionRequest{},
			kind: apperrors.KindBadRequest,
		},
		{
			name: "unknown ticket",
			req: CreateTransactionRequest{Tickets: []TransactionItemRequest{
				{TicketID: uuid.NewString(), Count: 1},
			}},
			kind: apperrors.KindNotFound,
		},
		{
			name: "malformed ticket id",
			req: CreateTransactionRequest{Tickets: []TransactionItemRequest{
				{TicketID: "not-a-uuid", Count: 1},
			}},
			kind: apperrors.KindBadRequest,
		},
		{
			name: "seat count mismatch",
			req: CreateTransactionRequest{Tickets: []TransactionItemRequest{
				{TicketID: f.seatedTicket.String(), Count: 2, SeatNumbers: []string{"A1"}},
			}},
			kind: apperrors.KindBadRequest,
		},
		{
			name: "seats for open-floor event",
			req: CreateTransactionRequest{Tickets: []TransactionItemRequest{
				{TicketID: f.openTicket.String(), Count: 1, SeatNumbers: []string{"A1"}},
			}},
			kind: apperrors.KindBadRequest,
		},
		{
			name: "duplicate seat in request",
			req: CreateTransactionRequest{Tickets: []TransactionItemRequest{
				{TicketID: f.seatedTicket.String(), Count: 2, SeatNumbers: []string{"A1", "A1"}},
			}},
			kind: apperrors.KindBadRequest,
		},
		{
			name: "event id does not match ticket",
			req: CreateTransactionRequest{Tickets: []TransactionItemRequest{
				{TicketID: f.openTicket.String(), EventID: uuid.NewString(), Count: 1},
			}},
			kind: apperrors.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.CreateTransaction(context.Background(), f.userID, &tt.req)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, tt.kind, apperrors.KindOf(err))
			assert.Nil(t, f.repo.created, "aborted checkout must not persist")
		})
	}
}

func TestCreateTransactionUnknownUser(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.CreateTransaction(context.Background(), uuid.New(), &CreateTransactionRequest{
		Tickets: []TransactionItemRequest{{TicketID: f.openTicket.String(), Count: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetUserTransactions(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.CreateTransaction(context.Background(), f.userID, &CreateTransactionRequest{
		Tickets: []TransactionItemRequest{{TicketID: f.openTicket.String(), Count: 1}},
	})
	require.NoError(t, err)

	txns, err := f.svc.GetUserTransactions(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	other, err := f.svc.GetUserTransactions(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGetTransactionMissing(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.GetTransaction(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetTransactionRepositoryErrorIsNotMasked(t *testing.T) {
	f := newCheckoutFixture(t)
	f.repo.getByIDErr = errors.New("connection reset")

	_, err := f.svc.GetTransaction(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotEqual(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
