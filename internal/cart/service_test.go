package cart

import (
	"context"
	"testing"

	"biletsfera/internal/events"
	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/internal/tickets"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCartRepo struct {
	users   map[uuid.UUID]bool
	tickets map[uuid.UUID]*tickets.Ticket
	events  map[uuid.UUID]*events.Event
	items   map[uuid.UUID][]CartItem // by user

	added   int
	removed int
	cleared int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		users:   make(map[uuid.UUID]bool),
		tickets: make(map[uuid.UUID]*tickets.Ticket),
		events:  make(map[uuid.UUID]*events.Event),
		items:   make(map[uuid.UUID][]CartItem),
	}
}

func (f *fakeCartRepo) AddTicket(ctx context.Context, userID, eventID, ticketID uuid.UUID, quantity int) error {
	f.added++
	items := f.items[userID]
	for i := range items {
		if items[i].EventID == eventID {
			for j := range items[i].Lines {
				if items[i].Lines[j].TicketID == ticketID {
					items[i].Lines[j].Quantity += quantity
					return nil
				}
			}
			items[i].Lines = append(items[i].Lines, CartTicketLine{TicketID: ticketID, Quantity: quantity})
			return nil
		}
	}
	f.items[userID] = append(items, CartItem{
		ID:      uuid.New(),
		UserID:  userID,
		EventID: eventID,
		Lines:   []CartTicketLine{{TicketID: ticketID, Quantity: quantity}},
	})
	return nil
}

func (f *fakeCartRepo) RemoveTicket(ctx context.Context, userID, eventID, ticketID uuid.UUID) error {
	items := f.items[userID]
	for i := range items {
		if items[i].EventID != eventID {
			continue
		}
		for j := range items[i].Lines {
			if items[i].Lines[j].TicketID != ticketID {
				continue
			}
			f.removed++
			if items[i].Lines[j].Quantity > 1 {
				items[i].Lines[j].Quantity--
				return nil
			}
			items[i].Lines = append(items[i].Lines[:j], items[i].Lines[j+1:]...)
			if len(items[i].Lines) == 0 {
				f.items[userID] = append(items[:i], items[i+1:]...)
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCartRepo) GetCartItems(ctx context.Context, userID uuid.UUID) ([]CartItem, error) {
	return f.items[userID], nil
}

func (f *fakeCartRepo) ClearCart(ctx context.Context, userID uuid.UUID) error {
	f.cleared++
	delete(f.items, userID)
	return nil
}

func (f *fakeCartRepo) GetTicket(ctx context.Context, ticketID uuid.UUID) (*tickets.Ticket, error) {
	t, ok := f.tickets[ticketID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeCartRepo) GetEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error) {
	e, ok := f.events[eventID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeCartRepo) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return f.users[userID], nil
}

type cartFixture struct {
	repo     *fakeCartRepo
	svc      Service
	userID   uuid.UUID
	eventID  uuid.UUID
	ticketID uuid.UUID
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	f := &cartFixture{
		repo:   newFakeCartRepo(),
		userID: uuid.New(),
	}
	f.repo.users[f.userID] = true
	f.svc = NewService(f.repo, nil, 0)

	f.eventID = uuid.New()
	f.repo.events[f.eventID] = &events.Event{
		ID:       f.eventID,
		Title:    "Open Air",
		Date:     "2026-10-03",
		Location: "Warsaw",
	}
	f.ticketID = uuid.New()
	f.repo.tickets[f.ticketID] = &tickets.Ticket{
		ID:      f.ticketID,
		EventID: f.eventID,
		Type:    "standard",
		Price:   decimal.RequireFromString("89.00"),
	}

	return f
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddToCart(ctx, f.userID, f.eventID, f.ticketID, 1))
	require.NoError(t, f.svc.AddToCart(ctx, f.userID, f.eventID, f.ticketID, 2))

	cart, err := f.svc.GetCart(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Len(t, cart.Items[0].Lines, 1)
	assert.Equal(t, 3, cart.Items[0].Lines[0].Quantity)
	assert.True(t, cart.TotalCost.Equal(decimal.RequireFromString("267.00")))
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	f := newCartFixture(t)

	err := f.svc.AddToCart(context.Background(), f.userID, f.eventID, f.ticketID, 0)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
	assert.Zero(t, f.repo.added)
}

func TestAddToCartRejectsForeignTicket(t *testing.T) {
	f := newCartFixture(t)

	otherEvent := uuid.New()
	f.repo.events[otherEvent] = &events.Event{ID: otherEvent, Title: "Other"}

	err := f.svc.AddToCart(context.Background(), f.userID, otherEvent, f.ticketID, 1)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
	assert.Zero(t, f.repo.added)
}

func TestAddToCartUnknownTicket(t *testing.T) {
	f := newCartFixture(t)

	err := f.svc.AddToCart(context.Background(), f.userID, f.eventID, uuid.New(), 1)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestAddToCartUnknownUser(t *testing.T) {
	f := newCartFixture(t)

	err := f.svc.AddToCart(context.Background(), uuid.New(), f.eventID, f.ticketID, 1)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRemoveFromCartDecrementsThenRemoves(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddToCart(ctx, f.userID, f.eventID, f.ticketID, 1))
	require.NoError(t, f.svc.AddToCart(ctx, f.userID, f.eventID, f.ticketID, 1))

	require.NoError(t, f.svc.RemoveFromCart(ctx, f.userID, f.eventID, f.ticketID))
	cart, err := f.svc.GetCart(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Lines[0].Quantity)

	// last removal cascades the line and the item away
	require.NoError(t, f.svc.RemoveFromCart(ctx, f.userID, f.eventID, f.ticketID))
	cart, err = f.svc.GetCart(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalCost.IsZero())
}

func TestRemoveFromCartMissingLine(t *testing.T) {
	f := newCartFixture(t)

	err := f.svc.RemoveFromCart(context.Background(), f.userID, f.eventID, f.ticketID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetCartSkipsRemovedEvents(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddToCart(ctx, f.userID, f.eventID, f.ticketID, 1))
	delete(f.repo.events, f.eventID)

	cart, err := f.svc.GetCart(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearCart(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddToCart(ctx, f.userID, f.eventID, f.ticketID, 1))
	require.NoError(t, f.svc.ClearCart(ctx, f.userID))

	cart, err := f.svc.GetCart(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 1, f.repo.cleared)
}
