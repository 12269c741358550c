package application

import (
	"context"
	"errors"
	"testing"

	"creatorpay/contexts/content-tracking/channel-service/adapters/memory"
	domainerrors "creatorpay/contexts/content-tracking/channel-service/domain/errors"
)

func newService(store *memory.Store) Service {
	return Service{Repository: store, Clock: store, IDGen: store}
}

func TestChannelCrudFlow(t *testing.T) {
	store := memory.NewStore(nil)
	service := newService(store)

	created, err := service.CreateChannel(context.Background(), UpsertChannelInput{
		Name:     "Main Shorts",
		Platform: "youtube",
	})
	if err != nil {
		t.Fatalf("create channel failed: %v", err)
	}

	updated, err := service.UpdateChannel(context.Background(), created.ChannelID, UpsertChannelInput{
		Name:        "Main Shorts Revamped",
		Platform:    "youtube",
		PlatformURL: "https://youtube.com/@main",
	})
	if err != nil {
		t.Fatalf("update channel failed: %v", err)
	}
	if updated.Name != "Main Shorts Revamped" {
		t.Fatalf("unexpected channel name %s", updated.Name)
	}

	if err := service.DeleteChannel(context.Background(), created.ChannelID); err != nil {
		t.Fatalf("delete channel failed: %v", err)
	}
	if _, err := service.GetChannel(context.Background(), created.ChannelID); !errors.Is(err, domainerrors.ErrChannelNotFound) {
		t.Fatalf("expected channel not found, got %v", err)
	}
}

func TestCreateChannelRejectsMissingName(t *testing.T) {
	service := newService(memory.NewStore(nil))
	_, err := service.CreateChannel(context.Background(), UpsertChannelInput{Platform: "tiktok"})
	if !errors.Is(err, domainerrors.ErrInvalidChannelInput) {
		t.Fatalf("expected invalid channel input, got %v", err)
	}
}

func TestMappingLifecycle(t *testing.T) {
	store := memory.NewStore(nil)
	service := newService(store)

	channel, err := service.CreateChannel(context.Background(), UpsertChannelInput{
		Name:     "Clips",
		Platform: "tiktok",
	})
	if err != nil {
		t.Fatalf("create channel failed: %v", err)
	}

	if _, err := service.MapContent(context.Background(), channel.ChannelID, "content-1"); err != nil {
		t.Fatalf("map content failed: %v", err)
	}
	if _, err := service.MapContent(context.Background(), channel.ChannelID, "content-1"); !errors.Is(err, domainerrors.ErrMappingExists) {
		t.Fatalf("expected duplicate mapping error, got %v", err)
	}

	mappings, err := service.ListMappings(context.Background(), channel.ChannelID)
	if err != nil {
		t.Fatalf("list mappings failed: %v", err)
	}
	if len(mappings) != 1 {
		t.Fatalf("expected one mapping, got %d", len(mappings))
	}

	if err := service.UnmapContent(context.Background(), channel.ChannelID, "content-1"); err != nil {
		t.Fatalf("unmap content failed: %v", err)
	}
	if err := service.UnmapContent(context.Background(), channel.ChannelID, "content-1"); !errors.Is(err, domainerrors.ErrMappingNotFound) {
		t.Fatalf("expected mapping not found, got %v", err)
	}
}
