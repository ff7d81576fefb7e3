// README: Ride search service with a short-TTL Redis cache on the full listing.
package ride

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

const listingCacheKey = "cache:rides:all"

type Searcher interface {
	Search(ctx context.Context, f SearchFilter) ([]Listing, error)
	Get(ctx context.Context, id types.ID) (*Listing, error)
}

type Service struct {
	store    Searcher
	redis    *redis.Client
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewService(store Searcher, rdb *redis.Client, cacheTTL time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, redis: rdb, cacheTTL: cacheTTL, log: log}
}

// Search serves filtered queries straight from the store. The unfiltered
// listing (the default screen) is cached; cache errors degrade to the store.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]Listing, error) {
	if f != (SearchFilter{}) || s.redis == nil {
		return s.store.Search(ctx, f)
	}

	if data, err := s.redis.Get(ctx, listingCacheKey).Bytes(); err == nil {
		var cached []Listing
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	} else if err != redis.Nil {
		s.log.Warn("ride cache read failed", "err", err)
	}

	listings, err := s.store.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(listings); err == nil {
		if err := s.redis.Set(ctx, listingCacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn("ride cache write failed", "err", err)
		}
	}
	return listings, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Listing, error) {
	return s.store.Get(ctx, id)
}

// Invalidate drops the cached listing after seat counts change.
func (s *Service) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, listingCacheKey).Err(); err != nil {
		s.log.Warn("ride cache invalidate failed", "err", err)
	}
}
