package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"olx-scraper/models"
)

// CSVWriter streams raw (uncleaned) records to a CSV file as the crawler
// emits them. It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{
		"title", "price", "url", "tags",
		"user_name", "user_score", "user_since", "user_last_seen",
		"announcement_id", "view_counter", "location", "published_at",
		"description", "image_urls", "phone_number", "scraped_at",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one record and flushes, so a crashed run keeps everything
// emitted so far.
func (c *CSVWriter) Write(rec *models.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row := []string{
		rec.Title,
		rec.Price,
		rec.URL,
		strings.Join(rec.Tags, "|"),
		rec.UserName,
		rec.UserScore,
		rec.UserSince,
		rec.UserLastSeen,
		rec.AnnouncementID,
		rec.ViewCounter,
		rec.Location,
		rec.PublishedAt,
		rec.Description,
		strings.Join(rec.ImageURLs, "|"),
		rec.PhoneNumber,
		rec.ScrapedAt.Format(time.RFC3339),
	}
	if err := c.writer.Write(row); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writer.Flush()
	return c.file.Close()
}
