package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"olx-scraper/models"
	"olx-scraper/utils"
)

// PostgresWriter persists cleaned records to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, waiting for the
// database to come up via the retry policy, runs schema migrations, and
// returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, retry *utils.RetryConfig) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do("postgres-connect", db.Ping); err != nil {
		return nil, err
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			id              SERIAL PRIMARY KEY,
			title           TEXT        NOT NULL,
			price           TEXT        NOT NULL DEFAULT '',
			url             TEXT        UNIQUE NOT NULL,
			tags            TEXT[]      NOT NULL DEFAULT '{}',
			user_name       TEXT        NOT NULL DEFAULT '',
			user_score      TEXT        NOT NULL DEFAULT '',
			user_since      TEXT        NOT NULL DEFAULT '',
			user_last_seen  TEXT        NOT NULL DEFAULT '',
			announcement_id TEXT        NOT NULL DEFAULT '',
			view_counter    TEXT        NOT NULL DEFAULT '',
			location        TEXT        NOT NULL DEFAULT '',
			published_at    TEXT        NOT NULL DEFAULT '',
			description     TEXT        NOT NULL DEFAULT '',
			image_urls      TEXT[]      NOT NULL DEFAULT '{}',
			phone_number    TEXT        NOT NULL DEFAULT '',
			scraped_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_records_location     ON records(location);
		CREATE INDEX IF NOT EXISTS idx_records_published_at ON records(published_at);
	`)
	return err
}

// WriteAll upserts the cleaned records, one statement per record so a single
// bad row cannot sink the batch.
func (pw *PostgresWriter) WriteAll(records []*models.Record) error {
	if len(records) == 0 {
		return nil
	}

	stmt, err := pw.db.Prepare(`
		INSERT INTO records (
			title, price, url, tags,
			user_name, user_score, user_since, user_last_seen,
			announcement_id, view_counter, location, published_at,
			description, image_urls, phone_number, scraped_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (url) DO UPDATE SET
			price        = EXCLUDED.price,
			view_counter = EXCLUDED.view_counter,
			phone_number = EXCLUDED.phone_number,
			scraped_at   = EXCLUDED.scraped_at
	`)
	if err != nil {
		return fmt.Errorf("postgres: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(
			r.Title, r.Price, r.URL, pq.Array(r.Tags),
			r.UserName, r.UserScore, r.UserSince, r.UserLastSeen,
			r.AnnouncementID, r.ViewCounter, r.Location, r.PublishedAt,
			r.Description, pq.Array(r.ImageURLs), r.PhoneNumber, r.ScrapedAt,
		); err != nil {
			return fmt.Errorf("postgres: insert %s: %w", r.URL, err)
		}
	}
	return nil
}

// FetchAll retrieves all stored records — used by the report service.
func (pw *PostgresWriter) FetchAll() ([]*models.Record, error) {
	rows, err := pw.db.Query(`
		SELECT title, price, url, tags,
		       user_name, user_score, user_since, user_last_seen,
		       announcement_id, view_counter, location, published_at,
		       description, image_urls, phone_number, scraped_at
		FROM records
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		r := &models.Record{}
		if err := rows.Scan(
			&r.Title, &r.Price, &r.URL, pq.Array(&r.Tags),
			&r.UserName, &r.UserScore, &r.UserSince, &r.UserLastSeen,
			&r.AnnouncementID, &r.ViewCounter, &r.Location, &r.PublishedAt,
			&r.Description, pq.Array(&r.ImageURLs), &r.PhoneNumber, &r.ScrapedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the database connection.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
