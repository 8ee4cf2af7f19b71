package analytics

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"biletsfera/internal/shared/constants"
	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	TicketsSoldForEvent(ctx context.Context, eventID uuid.UUID) (*TicketsSoldResponse, error)
	TicketsSoldForOrganiser(ctx context.Context, organiser string) (*TicketsSoldResponse, error)
	EarningsForEvent(ctx context.Context, eventID uuid.UUID) (*EarningsResponse, error)
	EarningsForOrganiser(ctx context.Context, organiser string) (*EarningsResponse, error)
	ViewsForOrganiser(ctx context.Context, organiser string) (*ViewsResponse, error)
	SaleDataForOrganiser(ctx context.Context, organiser string) (*SaleDataResponse, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{repo: repo, cache: cacheService, cacheTTL: cacheTTL}
}

// cached runs fetch behind a short-TTL cache entry. Aggregates read
// committed rows only, so a stale answer is at most cacheTTL old.
func (s *service) cached(ctx context.Context, key string, dest interface{}, fetch func() (interface{}, error)) error {
	if s.cache == nil {
		value, err := fetch()
		if err != nil {
			return err
		}
		return assign(value, dest)
	}
	return s.cache.GetOrSet(ctx, key, s.cacheTTL, fetch, dest)
}

func (s *service) TicketsSoldForEvent(ctx context.Context, eventID uuid.UUID) (*TicketsSoldResponse, error) {
	exists, err := s.repo.EventExists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("event not found")
	}

	var resp TicketsSoldResponse
	err = s.cached(ctx, constants.StatsTicketsSoldByEventKey(eventID.String()), &resp, func() (interface{}, error) {
		sold, err := s.repo.TicketsSoldForEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return TicketsSoldResponse{TicketsSold: sold}, nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) TicketsSoldForOrganiser(ctx context.Context, organiser string) (*TicketsSoldResponse, error) {
	if err := s.requireOrganiser(ctx, organiser); err != nil {
		return nil, err
	}

	var resp TicketsSoldResponse
	err := s.cached(ctx, constants.StatsTicketsSoldByOrganiserKey(organiser), &resp, func() (interface{}, error) {
		ticketIDs, err := s.repo.OrganiserTicketIDs(ctx, organiser)
		if err != nil {
			return nil, err
		}
		sold, err := s.repo.TicketsSoldForTickets(ctx, ticketIDs)
		if err != nil {
			return nil, err
		}
		return TicketsSoldResponse{TicketsSold: sold}, nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) EarningsForEvent(ctx context.Context, eventID uuid.UUID) (*EarningsResponse, error) {
	exists, err := s.repo.EventExists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("event not found")
	}

	var resp EarningsResponse
	err = s.cached(ctx, constants.StatsEarningsByEventKey(eventID.String()), &resp, func() (interface{}, error) {
		earnings, err := s.repo.EarningsForEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return EarningsResponse{TotalEarnings: earnings}, nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) EarningsForOrganiser(ctx context.Context, organiser string) (*EarningsResponse, error) {
	if err := s.requireOrganiser(ctx, organiser); err != nil {
		return nil, err
	}

	var resp EarningsResponse
	err := s.cached(ctx, constants.StatsEarningsByOrganiserKey(organiser), &resp, func() (interface{}, error) {
		ticketIDs, err := s.repo.OrganiserTicketIDs(ctx, organiser)
		if err != nil {
			return nil, err
		}
		earnings, err := s.repo.EarningsForTickets(ctx, ticketIDs)
		if err != nil {
			return nil, err
		}
		return EarningsResponse{TotalEarnings: earnings}, nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) ViewsForOrganiser(ctx context.Context, organiser string) (*ViewsResponse, error) {
	if err := s.requireOrganiser(ctx, organiser); err != nil {
		return nil, err
	}

	var resp ViewsResponse
	err := s.cached(ctx, constants.StatsViewsByOrganiserKey(organiser), &resp, func() (interface{}, error) {
		views, err := s.repo.ViewsForOrganiser(ctx, organiser)
		if err != nil {
			return nil, err
		}
		return ViewsResponse{TotalViews: views}, nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) SaleDataForOrganiser(ctx context.Context, organiser string) (*SaleDataResponse, error) {
	if err := s.requireOrganiser(ctx, organiser); err != nil {
		return nil, err
	}

	var resp SaleDataResponse
	err := s.cached(ctx, constants.StatsSaleDataKey(organiser), &resp, func() (interface{}, error) {
		ticketIDs, err := s.repo.OrganiserTicketIDs(ctx, organiser)
		if err != nil {
			return nil, err
		}
		rows, err := s.repo.SaleRowsForTickets(ctx, ticketIDs)
		if err != nil {
			return nil, err
		}
		return SaleDataResponse{
			Organiser: organiser,
			Buckets:   BucketSalesByDay(rows),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// BucketSalesByDay folds raw sale rows into one bucket per calendar
// day (UTC), ordered by date ascending.
func BucketSalesByDay(rows []SaleRow) []SaleBucket {
	byDay := make(map[string]*SaleBucket)
	for _, row := range rows {
		day := row.SaleDate.UTC().Format("2006-01-02")
		bucket, ok := byDay[day]
		if !ok {
			bucket = &SaleBucket{Date: day, Revenue: decimal.Zero}
			byDay[day] = bucket
		}
		bucket.TicketsSold += int64(row.Count)
		bucket.Revenue = bucket.Revenue.Add(row.SingleTicketCost.Mul(decimal.NewFromInt(int64(row.Count))))
	}

	buckets := make([]SaleBucket, 0, len(byDay))
	for _, bucket := range byDay {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets
}

func assign(value, dest interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (s *service) requireOrganiser(ctx context.Context, organiser string) error {
	if organiser == "" {
		return apperrors.BadRequest("organiser name is required")
	}
	exists, err := s.repo.OrganiserExists(ctx, organiser)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("organiser has no events")
	}
	return nil
}
