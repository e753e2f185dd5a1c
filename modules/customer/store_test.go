package customer_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/modules/customer"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/pg"
	"github.com/dmitrymomot/formkit/pkg/redis"
)

func testDraftStore(t *testing.T, store customer.DraftStore) {
	t.Helper()
	ctx := context.Background()
	session := "draft-" + uuid.NewString()

	_, err := store.LoadDraft(ctx, session)
	assert.ErrorIs(t, err, customer.ErrDraftNotFound)

	snap := form.Snapshot{
		Values: map[string]any{
			"firstName":  "Sutton",
			"emailGroup": map[string]any{"email": "s@example.com"},
			"addresses":  []any{map[string]any{"city": "Springfield"}},
		},
		Touched: []string{"firstName"},
	}
	require.NoError(t, store.SaveDraft(ctx, session, snap, time.Minute))

	got, err := store.LoadDraft(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	require.NoError(t, store.DeleteDraft(ctx, session))
	_, err = store.LoadDraft(ctx, session)
	assert.ErrorIs(t, err, customer.ErrDraftNotFound)

	assert.ErrorIs(t, store.SaveDraft(ctx, "", snap, time.Minute), customer.ErrEmptySession)
}

func testRepository(t *testing.T, repo customer.Repository) {
	t.Helper()
	ctx := context.Background()
	rating := 5

	c := &customer.Customer{
		FirstName:    "Sutton",
		LastName:     "Yamanashi",
		Email:        "s@example.com",
		Notification: customer.NotifyEmail,
		Rating:       &rating,
		SendCatalog:  true,
		Addresses:    []customer.Address{{AddressType: "home", City: "Springfield", Zip: "62701"}},
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotEqual(t, uuid.Nil, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Email, got.Email)
	assert.Equal(t, c.Addresses, got.Addresses)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 5, *got.Rating)

	_, err = repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestMemoryDraftStore(t *testing.T) {
	t.Parallel()
	store := customer.NewMemoryDraftStore()
	testDraftStore(t, store)

	t.Run("drafts expire", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, store.SaveDraft(ctx, "short", form.Snapshot{}, time.Millisecond))
		time.Sleep(10 * time.Millisecond)
		_, err := store.LoadDraft(ctx, "short")
		assert.ErrorIs(t, err, customer.ErrDraftNotFound)
	})

	t.Run("stored drafts are isolated from callers", func(t *testing.T) {
		ctx := context.Background()
		values := map[string]any{"firstName": "Sutton"}
		require.NoError(t, store.SaveDraft(ctx, "iso", form.Snapshot{Values: values}, 0))
		values["firstName"] = "changed"

		got, err := store.LoadDraft(ctx, "iso")
		require.NoError(t, err)
		assert.Equal(t, "Sutton", got.Values["firstName"])
	})
}

func TestMemoryRepository(t *testing.T) {
	t.Parallel()
	testRepository(t, customer.NewMemoryRepository())
}

func TestRedisDraftStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}

	client, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: url, ConnectTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	testDraftStore(t, customer.NewRedisDraftStore(redis.NewStorage(client, "test:drafts:")))
}

func TestPostgresRepository(t *testing.T) {
	connString := os.Getenv("PG_CONN_URL")
	if connString == "" {
		t.Skip("PG_CONN_URL is not set")
	}

	ctx := context.Background()
	cfg := pg.Config{ConnectionString: connString, MaxOpenConns: 2, MigrationsTable: "schema_migrations"}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, cfg, customer.Migrations, customer.MigrationsDir, nil))
	testRepository(t, customer.NewPostgresRepository(pool))
}
