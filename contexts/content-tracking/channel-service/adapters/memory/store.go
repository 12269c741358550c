package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"creatorpay/contexts/content-tracking/channel-service/domain/entities"
	domainerrors "creatorpay/contexts/content-tracking/channel-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	channels map[string]entities.Channel
	mappings map[string]entities.ChannelMapping
}

func NewStore(seed []entities.Channel) *Store {
	store := &Store{
		channels: make(map[string]entities.Channel),
		mappings: make(map[string]entities.ChannelMapping),
	}
	for _, channel := range seed {
		store.channels[channel.ChannelID] = channel
	}
	return store
}

func (s *Store) CreateChannel(_ context.Context, channel entities.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[channel.ChannelID] = channel
	return nil
}

func (s *Store) UpdateChannel(_ context.Context, channel entities.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.channels[channel.ChannelID]; !ok {
		return domainerrors.ErrChannelNotFound
	}
	s.channels[channel.ChannelID] = channel
	return nil
}

func (s *Store) GetChannel(_ context.Context, channelID string) (entities.Channel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channel, ok := s.channels[channelID]
	if !ok {
		return entities.Channel{}, domainerrors.ErrChannelNotFound
	}
	return channel, nil
}

func (s *Store) ListChannels(_ context.Context) ([]entities.Channel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channels := make([]entities.Channel, 0, len(s.channels))
	for _, channel := range s.channels {
		channels = append(channels, channel)
	}
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].CreatedAt.After(channels[j].CreatedAt)
	})
	return channels, nil
}

func (s *Store) DeleteChannel(_ context.Context, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.channels[channelID]; !ok {
		return domainerrors.ErrChannelNotFound
	}
	delete(s.channels, channelID)
	for key, mapping := range s.mappings {
		if mapping.ChannelID == channelID {
			delete(s.mappings, key)
		}
	}
	return nil
}

func (s *Store) CreateMapping(_ context.Context, mapping entities.ChannelMapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := mapping.ChannelID + "|" + mapping.ContentItemID
	if _, ok := s.mappings[key]; ok {
		return domainerrors.ErrMappingExists
	}
	s.mappings[key] = mapping
	return nil
}

func (s *Store) ListMappings(_ context.Context, channelID string) ([]entities.ChannelMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mappings := make([]entities.ChannelMapping, 0)
	for _, mapping := range s.mappings {
		if mapping.ChannelID == channelID {
			mappings = append(mappings, mapping)
		}
	}
	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].CreatedAt.Before(mappings[j].CreatedAt)
	})
	return mappings, nil
}

func (s *Store) DeleteMapping(_ context.Context, channelID string, contentItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := channelID + "|" + contentItemID
	if _, ok := s.mappings[key]; !ok {
		return domainerrors.ErrMappingNotFound
	}
	delete(s.mappings, key)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
