package storage

import (
	"context"
	"fmt"
	"time"

	"booking-scraper/config"
	"booking-scraper/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresWriter is the optional database sink behind --save-db. Columns
// are TEXT throughout: fields stay raw scraped strings end to end.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(ctx context.Context, cfg *config.Config) (*PostgresWriter, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}

func (w *PostgresWriter) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS hotels (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT,
		review_score TEXT,
		review_count TEXT,
		price TEXT,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_hotels_location ON hotels(location);
	`

	if _, err := w.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

// WriteBatch inserts all hotels in one round trip. Rows carry no natural
// key, so every run inserts a fresh batch.
func (w *PostgresWriter) WriteBatch(ctx context.Context, hotels []models.Hotel) error {
	if len(hotels) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	batch := &pgx.Batch{}
	insertSQL := `
	INSERT INTO hotels (name, location, review_score, review_count, price)
	VALUES ($1, $2, $3, $4, $5);
	`

	for _, h := range hotels {
		batch.Queue(insertSQL, h.Name, h.Location, h.ReviewScore, h.ReviewCount, h.Price)
	}

	results := w.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(hotels); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert failed at row %d: %w", i, err)
		}
	}

	return nil
}
