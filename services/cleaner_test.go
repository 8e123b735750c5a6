package services

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"olx-scraper/models"
	"olx-scraper/utils"
)

func newTestLogger() *log.Logger { return utils.NewLogger("error") }

func TestCleanerDropsEmptyURL(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.Record{
		{Title: "No URL", Price: "100 грн", URL: "", ScrapedAt: time.Now()},
		{Title: "Has URL", Price: "200 грн", URL: "https://www.olx.ua/d/uk/obyavlenie/1", ScrapedAt: time.Now()},
	}

	cleaned := c.Clean(raw)
	if len(cleaned) != 1 {
		t.Fatalf("expected 1 record after dropping empty URL, got %d", len(cleaned))
	}
	if cleaned[0].Title != "Has URL" {
		t.Errorf("wrong record survived: %q", cleaned[0].Title)
	}
}

func TestCleanerDeduplicatesURL(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.Record{
		{Title: "A", URL: "https://www.olx.ua/d/uk/obyavlenie/1", ScrapedAt: time.Now()},
		{Title: "B", URL: "https://www.olx.ua/d/uk/obyavlenie/1", ScrapedAt: time.Now()},
	}

	cleaned := c.Clean(raw)
	if len(cleaned) != 1 {
		t.Errorf("expected 1 record after deduplication, got %d", len(cleaned))
	}
}

func TestCleanerNormalizesWhitespace(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.Record{{
		Title:       "  Дитяча  коляска\n2в1 ",
		Price:       " 4 500  грн. ",
		URL:         "https://www.olx.ua/d/uk/obyavlenie/2",
		Description: "Стан   гарний.\tСамовивіз.",
	}}

	cleaned := c.Clean(raw)
	if len(cleaned) != 1 {
		t.Fatalf("expected 1 record, got %d", len(cleaned))
	}
	if cleaned[0].Title != "Дитяча коляска 2в1" {
		t.Errorf("title not normalized: %q", cleaned[0].Title)
	}
	if cleaned[0].Price != "4 500 грн." {
		t.Errorf("price not normalized: %q", cleaned[0].Price)
	}
	if cleaned[0].Description != "Стан гарний. Самовивіз." {
		t.Errorf("description not normalized: %q", cleaned[0].Description)
	}
}

func TestCleanerNormalizesPublishDate(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.Record{
		{URL: "https://www.olx.ua/d/uk/obyavlenie/3", Title: "a", PublishedAt: "5 травня 2024 р."},
		{URL: "https://www.olx.ua/d/uk/obyavlenie/4", Title: "b", PublishedAt: "not a date"},
		{URL: "https://www.olx.ua/d/uk/obyavlenie/5", Title: "c", PublishedAt: ""},
	}

	cleaned := c.Clean(raw)
	if len(cleaned) != 3 {
		t.Fatalf("expected 3 records, got %d", len(cleaned))
	}
	if cleaned[0].PublishedAt != "05 травня 2024 р." {
		t.Errorf("date not canonicalized: %q", cleaned[0].PublishedAt)
	}
	if cleaned[1].PublishedAt != "not a date" {
		t.Errorf("unrecognized date should be kept raw, got %q", cleaned[1].PublishedAt)
	}
	if cleaned[2].PublishedAt != "" {
		t.Errorf("empty date should stay empty, got %q", cleaned[2].PublishedAt)
	}
}

func TestCleanerDoesNotMutateInput(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.Record{{Title: "  padded  ", URL: "https://www.olx.ua/d/uk/obyavlenie/6"}}

	_ = c.Clean(raw)
	if raw[0].Title != "  padded  " {
		t.Errorf("input record mutated: %q", raw[0].Title)
	}
}
