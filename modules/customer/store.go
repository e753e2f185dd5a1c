package customer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// DraftStore keeps unfinished form snapshots per session.
type DraftStore interface {
	SaveDraft(ctx context.Context, session string, s form.Snapshot, ttl time.Duration) error
	// LoadDraft returns ErrDraftNotFound for unknown or expired sessions.
	LoadDraft(ctx context.Context, session string) (form.Snapshot, error)
	DeleteDraft(ctx context.Context, session string) error
}

// Repository persists accepted customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	// Get returns ErrCustomerNotFound for unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*Customer, error)
}

type memoryDraft struct {
	snapshot form.Snapshot
	expires  time.Time
}

// MemoryDraftStore implements DraftStore in process memory.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]memoryDraft
	now    func() time.Time
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{
		drafts: make(map[string]memoryDraft),
		now:    time.Now,
	}
}

func (m *MemoryDraftStore) SaveDraft(_ context.Context, session string, s form.Snapshot, ttl time.Duration) error {
	if session == "" {
		return ErrEmptySession
	}

	d := memoryDraft{snapshot: cloneSnapshot(s)}
	if ttl > 0 {
		d.expires = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.drafts[session] = d
	m.mu.Unlock()
	return nil
}

func (m *MemoryDraftStore) LoadDraft(_ context.Context, session string) (form.Snapshot, error) {
	m.mu.RLock()
	d, ok := m.drafts[session]
	m.mu.RUnlock()

	if !ok || (!d.expires.IsZero() && m.now().After(d.expires)) {
		return form.Snapshot{}, ErrDraftNotFound
	}
	return cloneSnapshot(d.snapshot), nil
}

func (m *MemoryDraftStore) DeleteDraft(_ context.Context, session string) error {
	m.mu.Lock()
	delete(m.drafts, session)
	m.mu.Unlock()
	return nil
}

// MemoryRepository implements Repository in process memory.
type MemoryRepository struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]Customer
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{customers: make(map[uuid.UUID]Customer)}
}

func (m *MemoryRepository) Create(_ context.Context, c *Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	stored := *c
	stored.Addresses = append([]Address(nil), c.Addresses...)

	m.mu.Lock()
	m.customers[c.ID] = stored
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*Customer, error) {
	m.mu.RLock()
	c, ok := m.customers[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrCustomerNotFound
	}
	c.Addresses = append([]Address(nil), c.Addresses...)
	return &c, nil
}

// cloneSnapshot copies the values tree so stored drafts cannot be changed
// through the caller's maps.
func cloneSnapshot(s form.Snapshot) form.Snapshot {
	out := form.Snapshot{
		Touched: append([]string(nil), s.Touched...),
		Dirty:   append([]string(nil), s.Dirty...),
	}
	if s.Values != nil {
		out.Values, _ = cloneValue(s.Values).(map[string]any)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = cloneValue(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = cloneValue(child)
		}
		return out
	}
	return v
}
