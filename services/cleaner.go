package services

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"olx-scraper/models"
)

// Cleaner validates and normalizes emitted records before durable storage:
// records without a URL are dropped, duplicates are collapsed, text fields
// get their whitespace normalized and the publish date is canonicalized.
type Cleaner struct {
	logger *log.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *log.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean processes raw records and returns the cleaned set. Input records are
// not mutated.
func (c *Cleaner) Clean(raw []*models.Record) []*models.Record {
	seen := make(map[string]struct{})
	result := make([]*models.Record, 0, len(raw))

	for _, r := range raw {
		url := strings.TrimSpace(r.URL)
		if url == "" {
			c.logger.Warn("dropping record without URL", "title", r.Title)
			continue
		}
		if _, dup := seen[url]; dup {
			c.logger.Debug("duplicate record skipped", "url", url)
			continue
		}
		seen[url] = struct{}{}

		clean := *r
		clean.URL = url
		clean.Title = normalizeText(r.Title)
		clean.Price = normalizeText(r.Price)
		clean.UserName = normalizeText(r.UserName)
		clean.Location = normalizeText(r.Location)
		clean.Description = normalizeText(r.Description)
		clean.PublishedAt = c.normalizeDate(r.PublishedAt, url)

		result = append(result, &clean)
	}

	c.logger.Info("records cleaned",
		"in", len(raw), "out", len(result), "dropped", len(raw)-len(result))
	return result
}

// normalizeDate canonicalizes the publish date, keeping the raw string when
// the normalizer does not recognize it (absent or odd dates are not worth
// dropping a record over).
func (c *Cleaner) normalizeDate(raw, url string) string {
	if raw == "" {
		return ""
	}
	normalized, err := NormalizeDate(raw)
	if err != nil {
		c.logger.Debug("publish date kept raw", "url", url, "date", raw, "err", err)
		return raw
	}
	return normalized
}

// normalizeText strips leading/trailing whitespace and collapses internal
// whitespace runs.
func normalizeText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
