package customer

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/formkit/pkg/pg"
)

// Migrations holds the goose migrations of the customers table, to be run
// with pg.Migrate(ctx, pool, cfg, customer.Migrations, customer.MigrationsDir, log).
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations.
const MigrationsDir = "migrations"

// PostgresRepository persists customers in PostgreSQL. Addresses are kept in
// a JSONB column since they are only ever read together with the customer.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const insertCustomer = `
INSERT INTO customers (id, first_name, last_name, email, phone, notification, rating, send_catalog, addresses, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const selectCustomer = `
SELECT id, first_name, last_name, email, phone, notification, rating, send_catalog, addresses, created_at
FROM customers WHERE id = $1`

func (r *PostgresRepository) Create(ctx context.Context, c *Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	list := c.Addresses
	if list == nil {
		list = []Address{}
	}
	addresses, err := json.Marshal(list)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}

	_, err = r.pool.Exec(ctx, insertCustomer,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Notification,
		c.Rating, c.SendCatalog, addresses, c.CreatedAt,
	)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	var (
		c         Customer
		addresses []byte
	)
	err := r.pool.QueryRow(ctx, selectCustomer, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Notification,
		&c.Rating, &c.SendCatalog, &addresses, &c.CreatedAt,
	)
	if pg.IsNotFoundError(err) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	if len(addresses) > 0 {
		if err := json.Unmarshal(addresses, &c.Addresses); err != nil {
			return nil, errors.Join(ErrFailedToLoad, err)
		}
	}
	return &c, nil
}
