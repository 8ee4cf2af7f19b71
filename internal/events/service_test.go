package events

import (
	"context"
	"testing"

	"biletsfera/internal/shared/utils/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type reactionKey struct {
	eventID uuid.UUID
	userID  uuid.UUID
	kind    ReactionType
}

type fakeEventRepo struct {
	events    map[uuid.UUID]*Event
	reactions map[reactionKey]bool
	views     map[uuid.UUID]int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:    make(map[uuid.UUID]*Event),
		reactions: make(map[reactionKey]bool),
		views:     make(map[uuid.UUID]int),
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) GetAll(ctx context.Context) ([]Event, error) {
	list := make([]Event, 0, len(f.events))
	for _, e := range f.events {
		list = append(list, *e)
	}
	return list, nil
}

func (f *fakeEventRepo) GetByOrganiser(ctx context.Context, organiser string) ([]Event, error) {
	var list []Event
	for _, e := range f.events {
		if e.Organiser == organiser {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (f *fakeEventRepo) IncrementViews(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.events[id]; !ok {
		return false, nil
	}
	f.views[id]++
	return true, nil
}

func (f *fakeEventRepo) ToggleReaction(ctx context.Context, eventID, userID uuid.UUID, reaction ReactionType) (bool, error) {
	key := reactionKey{eventID: eventID, userID: userID, kind: reaction}
	if f.reactions[key] {
		delete(f.reactions, key)
		return false, nil
	}
	f.reactions[key] = true
	return true, nil
}

func (f *fakeEventRepo) ReactionCount(ctx context.Context, eventID uuid.UUID, reaction ReactionType) (int64, error) {
	var count int64
	for key, active := range f.reactions {
		if active && key.eventID == eventID && key.kind == reaction {
			count++
		}
	}
	return count, nil
}

func (f *fakeEventRepo) GetUserReactions(ctx context.Context, userID uuid.UUID, reaction ReactionType) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for key, active := range f.reactions {
		if active && key.userID == userID && key.kind == reaction {
			ids = append(ids, key.eventID)
		}
	}
	return ids, nil
}

type noopSeatService struct {
	created map[uuid.UUID][]string
}

func (n *noopSeatService) CreateSeatMap(ctx context.Context, eventID uuid.UUID, seatNumbers []string) error {
	if n.created == nil {
		n.created = make(map[uuid.UUID][]string)
	}
	n.created[eventID] = seatNumbers
	return nil
}

func openFloorRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:     "Midnight Echoes: Open Air",
		Organiser: "Midnight Echoes",
		Date:      "2026-10-03",
		Category:  []string{"concert"},
		Tickets: []InlineTicketRequest{
			{Type: "standard", Price: decimal.RequireFromString("89.00")},
		},
	}
}

func TestCreateEventSeatNumberRules(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo)
	seatSvc := &noopSeatService{}
	svc.SetSeatService(seatSvc)
	ctx := context.Background()

	// reserved-seating event without seats is rejected
	seated := openFloorRequest()
	seated.Category = []string{"concert", SeatManagementCategory}
	_, err := svc.CreateEvent(ctx, seated)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	// open-floor event with seats is rejected
	open := openFloorRequest()
	open.SeatNumbers = []string{"A1"}
	_, err = svc.CreateEvent(ctx, open)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	// reserved-seating event with seats creates the seat map once
	seated.SeatNumbers = []string{"A1", "A2"}
	resp, err := svc.CreateEvent(ctx, seated)
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, seatSvc.created[id])
}

func TestCreateEventRejectsNegativePrice(t *testing.T) {
	svc := NewService(newFakeEventRepo())

	req := openFloorRequest()
	req.Tickets = []InlineTicketRequest{
		{Type: "standard", Price: decimal.RequireFromString("-1.00")},
	}

	_, err := svc.CreateEvent(context.Background(), req)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestToggleReactionSetSemantics(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo)
	ctx := context.Background()

	resp, err := svc.CreateEvent(ctx, openFloorRequest())
	require.NoError(t, err)
	eventID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	userID := uuid.New()

	first, err := svc.ToggleReaction(ctx, eventID, userID, "like")
	require.NoError(t, err)
	assert.True(t, first.Active)

	count, err := svc.GetReactionCount(ctx, eventID, "like")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count.Count)

	// same user, same action: the earlier reaction is removed
	second, err := svc.ToggleReaction(ctx, eventID, userID, "like")
	require.NoError(t, err)
	assert.False(t, second.Active)

	count, err = svc.GetReactionCount(ctx, eventID, "like")
	require.NoError(t, err)
	assert.Zero(t, count.Count)

	// like and follow are independent sets
	_, err = svc.ToggleReaction(ctx, eventID, userID, "follow")
	require.NoError(t, err)
	count, err = svc.GetReactionCount(ctx, eventID, "follow")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count.Count)
}

func TestToggleReactionValidation(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.ToggleReaction(ctx, uuid.New(), uuid.New(), "dislike")
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	_, err = svc.ToggleReaction(ctx, uuid.New(), uuid.New(), "like")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestIncrementViews(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo)
	ctx := context.Background()

	resp, err := svc.CreateEvent(ctx, openFloorRequest())
	require.NoError(t, err)
	eventID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	assert.True(t, svc.IncrementViews(ctx, eventID))
	assert.True(t, svc.IncrementViews(ctx, eventID))
	assert.Equal(t, 2, repo.views[eventID])

	// a missing event is not an error, just a no-op
	assert.False(t, svc.IncrementViews(ctx, uuid.New()))
}

func TestGetReactedEventsSkipsDeleted(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo)
	ctx := context.Background()
	userID := uuid.New()

	resp, err := svc.CreateEvent(ctx, openFloorRequest())
	require.NoError(t, err)
	keptID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	goneID := uuid.New()
	repo.reactions[reactionKey{eventID: keptID, userID: userID, kind: ReactionFollow}] = true
	repo.reactions[reactionKey{eventID: goneID, userID: userID, kind: ReactionFollow}] = true

	list, err := svc.GetReactedEvents(ctx, userID, "follow")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keptID.String(), list[0].ID)
}
