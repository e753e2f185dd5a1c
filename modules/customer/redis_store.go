package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/redis"
)

// RedisDraftStore keeps drafts as JSON documents in Redis.
type RedisDraftStore struct {
	storage *redis.Storage
}

// NewRedisDraftStore stores drafts through storage, typically created with
// redis.NewStorage(client, "drafts:").
func NewRedisDraftStore(storage *redis.Storage) *RedisDraftStore {
	return &RedisDraftStore{storage: storage}
}

func (s *RedisDraftStore) SaveDraft(ctx context.Context, session string, snap form.Snapshot, ttl time.Duration) error {
	if session == "" {
		return ErrEmptySession
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	if err := s.storage.Set(ctx, session, data, ttl); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (s *RedisDraftStore) LoadDraft(ctx context.Context, session string) (form.Snapshot, error) {
	if session == "" {
		return form.Snapshot{}, ErrDraftNotFound
	}

	data, err := s.storage.Get(ctx, session)
	if errors.Is(err, redis.ErrNotFound) {
		return form.Snapshot{}, ErrDraftNotFound
	}
	if err != nil {
		return form.Snapshot{}, errors.Join(ErrFailedToLoad, err)
	}

	var snap form.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return form.Snapshot{}, errors.Join(ErrFailedToLoad, fmt.Errorf("decode draft %s: %w", session, err))
	}
	return snap, nil
}

func (s *RedisDraftStore) DeleteDraft(ctx context.Context, session string) error {
	if session == "" {
		return nil
	}
	return s.storage.Delete(ctx, session)
}
