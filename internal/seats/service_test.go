package seats

import (
	"context"
	"testing"

	"biletsfera/internal/shared/utils/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSeatRepo struct {
	seats map[uuid.UUID][]Seat
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[uuid.UUID][]Seat)}
}

func (f *fakeSeatRepo) CreateSeats(ctx context.Context, seats []Seat) error {
	for _, s := range seats {
		f.seats[s.EventID] = append(f.seats[s.EventID], s)
	}
	return nil
}

func (f *fakeSeatRepo) GetSeatsByEventID(ctx context.Context, eventID uuid.UUID) ([]Seat, error) {
	return f.seats[eventID], nil
}

func (f *fakeSeatRepo) Reserve(tx *gorm.DB, eventID uuid.UUID, seatNumbers []string) error {
	available := make(map[string]int)
	for i, s := range f.seats[eventID] {
		if s.Available {
			available[s.SeatNumber] = i
		}
	}
	for _, sn := range seatNumbers {
		if _, ok := available[sn]; !ok {
			return apperrors.Conflict("one or more requested seats are unavailable")
		}
	}
	for _, sn := range seatNumbers {
		f.seats[eventID][available[sn]].Available = false
	}
	return nil
}


func TestCreateSeatMapValidation(t *testing.T) {
	svc := NewService(newFakeSeatRepo())
	eventID := uuid.New()

	err := svc.CreateSeatMap(context.Background(), eventID, nil)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	err = svc.CreateSeatMap(context.Background(), eventID, []string{"A1", ""})
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	err = svc.CreateSeatMap(context.Background(), eventID, []string{"A1", "A1"})
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	err = svc.CreateSeatMap(context.Background(), eventID, []string{"A1", "A2", "B1"})
	assert.NoError(t, err)
}

func TestGetSeatMapCounts(t *testing.T) {
	repo := newFakeSeatRepo()
	svc := NewService(repo)
	eventID := uuid.New()

	require.NoError(t, svc.CreateSeatMap(context.Background(), eventID, []string{"A1", "A2", "A3"}))
	require.NoError(t, svc.Reserve(nil, eventID, []string{"A2"}))

	seatMap, err := svc.GetSeatMap(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, eventID, seatMap.EventID)
	assert.Equal(t, 3, seatMap.TotalCount)
	assert.Equal(t, 2, seatMap.AvailableCount)
}

func TestGetSeatMapMissingEvent(t *testing.T) {
	svc := NewService(newFakeSeatRepo())

	_, err := svc.GetSeatMap(context.Background(), uuid.New())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestReserveConflictLeavesSeatsUntouched(t *testing.T) {
	repo := newFakeSeatRepo()
	svc := NewService(repo)
	eventID := uuid.New()

	require.NoError(t, svc.CreateSeatMap(context.Background(), eventID, []string{"A1", "A2"}))
	require.NoError(t, svc.Reserve(nil, eventID, []string{"A1"}))

	// second claim for A1 must conflict
	err := svc.Reserve(nil, eventID, []string{"A1", "A2"})
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	seatMap, err := svc.GetSeatMap(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, 1, seatMap.AvailableCount, "conflicting claim must not flip A2")
}
