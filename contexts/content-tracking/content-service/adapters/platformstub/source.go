package platformstub

import (
	"context"
	"errors"
	"sync"

	"creatorpay/contexts/content-tracking/content-service/domain/entities"
)

var ErrNoData = errors.New("platform view source has no data for content")

// Source is a stand-in for the real platform API clients. Counts are seeded
// by operators or tests; an unseeded platform ID is a fetch failure, which
// the sync job treats like any other per-item error.
type Source struct {
	mu     sync.RWMutex
	counts map[string]int64
}

func NewSource() *Source {
	return &Source{counts: make(map[string]int64)}
}

func (s *Source) SetViewCount(platform entities.Platform, platformID string, count int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key(platform, platformID)] = count
}

func (s *Source) FetchViewCount(_ context.Context, platform entities.Platform, platformID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count, ok := s.counts[key(platform, platformID)]
	if !ok {
		return 0, ErrNoData
	}
	return count, nil
}

func key(platform entities.Platform, platformID string) string {
	return string(platform) + ":" + platformID
}
