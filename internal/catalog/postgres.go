package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/p-n-ai/pai-planner/internal/learning"
	"github.com/p-n-ai/pai-planner/internal/platform/idgen"
)

const dbTimeout = 5 * time.Second

const selectResource = `SELECT id, title, type, difficulty, topics, quality, duration_minutes, url, embed_url
	FROM resources`

// PostgresCatalog is a PostgreSQL-backed Catalog implementation.
type PostgresCatalog struct {
	pool *pgxpool.Pool
	ids  idgen.Generator
}

// NewPostgresCatalog creates a catalog on top of the resources table.
func NewPostgresCatalog(pool *pgxpool.Pool, ids idgen.Generator) (*PostgresCatalog, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if ids == nil {
		ids = idgen.UUID{}
	}
	return &PostgresCatalog{pool: pool, ids: ids}, nil
}

func (c *PostgresCatalog) List(ctx context.Context) ([]learning.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := c.pool.Query(ctx, selectResource+` ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	defer rows.Close()

	resources := []learning.Resource{}
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}
	return resources, nil
}

func (c *PostgresCatalog) Get(ctx context.Context, id string) (learning.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	r, err := scanResource(c.pool.QueryRow(ctx, selectResource+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return learning.Resource{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, err
}

func (c *PostgresCatalog) Add(ctx context.Context, r learning.Resource) (learning.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	r = Normalize(r)
	if r.ID == "" {
		r.ID = c.ids.NewID()
	}
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}

	cmd, err := c.pool.Exec(ctx,
		`INSERT INTO resources (id, title, type, difficulty, topics, quality, duration_minutes, url, embed_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		r.ID,
		r.Title,
		string(r.Type),
		string(r.Difficulty),
		topics,
		r.Quality,
		r.Duration,
		r.URL,
		r.EmbedURL,
	)
	if err != nil {
		return learning.Resource{}, fmt.Errorf("insert resource: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return learning.Resource{}, fmt.Errorf("%w: %s", ErrExists, r.ID)
	}
	return r, nil
}

func (c *PostgresCatalog) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	cmd, err := c.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func scanResource(row pgx.Row) (learning.Resource, error) {
	var (
		r          learning.Resource
		typ, level string
	)
	err := row.Scan(
		&r.ID,
		&r.Title,
		&typ,
		&level,
		&r.Topics,
		&r.Quality,
		&r.Duration,
		&r.URL,
		&r.EmbedURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return learning.Resource{}, pgx.ErrNoRows
		}
		return learning.Resource{}, fmt.Errorf("scan resource: %w", err)
	}
	r.Type = learning.ResourceType(typ)
	r.Difficulty = learning.Level(level)
	return r, nil
}
