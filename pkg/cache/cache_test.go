package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsPayload struct {
	TicketsSold int64  `json:"ticketsSold"`
	Organiser   string `json:"organiser"`
}

func TestGetMissingKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectGet("biletsfera:stats:missing").RedisNil()

	var dest statsPayload
	err := svc.Get(context.Background(), "biletsfera:stats:missing", &dest)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetThenGetRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)
	ctx := context.Background()

	payload := statsPayload{TicketsSold: 42, Organiser: "Sofia Krawczyk"}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	mock.ExpectSet("biletsfera:stats:sold", data, time.Minute).SetVal("OK")
	require.NoError(t, svc.Set(ctx, "biletsfera:stats:sold", payload, time.Minute))

	mock.ExpectGet("biletsfera:stats:sold").SetVal(string(data))
	var dest statsPayload
	require.NoError(t, svc.Get(ctx, "biletsfera:stats:sold", &dest))
	assert.Equal(t, payload, dest)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrSetPopulatesOnMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	payload := statsPayload{TicketsSold: 7, Organiser: "Midnight Echoes"}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	mock.ExpectGet("biletsfera:stats:week").RedisNil()
	mock.ExpectSet("biletsfera:stats:week", data, time.Minute).SetVal("OK")

	fetched := 0
	var dest statsPayload
	err = svc.GetOrSet(context.Background(), "biletsfera:stats:week", time.Minute, func() (interface{}, error) {
		fetched++
		return payload, nil
	}, &dest)

	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, payload, dest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrSetSkipsFetcherOnHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	payload := statsPayload{TicketsSold: 7}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	mock.ExpectGet("biletsfera:stats:week").SetVal(string(data))

	var dest statsPayload
	err = svc.GetOrSet(context.Background(), "biletsfera:stats:week", time.Minute, func() (interface{}, error) {
		t.Fatal("fetcher must not run on a cache hit")
		return nil, nil
	}, &dest)

	require.NoError(t, err)
	assert.Equal(t, payload, dest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrSetPropagatesFetcherError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectGet("biletsfera:stats:week").RedisNil()

	var dest statsPayload
	fetchErr := errors.New("query failed")
	err := svc.GetOrSet(context.Background(), "biletsfera:stats:week", time.Minute, func() (interface{}, error) {
		return nil, fetchErr
	}, &dest)

	assert.ErrorIs(t, err, fetchErr)
}

func TestGetOrSetDegradesWhenRedisDown(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectGet("biletsfera:stats:week").SetErr(errors.New("connection refused"))

	payload := statsPayload{TicketsSold: 3}
	var dest statsPayload
	err := svc.GetOrSet(context.Background(), "biletsfera:stats:week", time.Minute, func() (interface{}, error) {
		return payload, nil
	}, &dest)

	require.NoError(t, err)
	assert.Equal(t, payload, dest)
}

func TestDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewService(client)

	mock.ExpectDel("biletsfera:cart:user-1").SetVal(1)
	require.NoError(t, svc.Delete(context.Background(), "biletsfera:cart:user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
