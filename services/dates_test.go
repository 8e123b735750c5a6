package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNormalizeDateToday(t *testing.T) {
	got, err := NormalizeDate("Сьогодні о 14:32")
	if err != nil {
		t.Fatalf("NormalizeDate returned error: %v", err)
	}

	now := time.Now()
	want := fmt.Sprintf("%02d %s %d р.", now.Day(), monthsUK[now.Month()-1], now.Year())
	if got != want {
		t.Errorf("NormalizeDate today: got %q, want %q", got, want)
	}
}

func TestNormalizeDateBareToday(t *testing.T) {
	got, err := NormalizeDate("Сьогодні")
	if err != nil {
		t.Fatalf("NormalizeDate returned error: %v", err)
	}
	if !strings.HasSuffix(got, " р.") {
		t.Errorf("expected canonical suffix, got %q", got)
	}
}

func TestNormalizeDateZeroPadsDay(t *testing.T) {
	got, err := NormalizeDate("5 травня 2024 р.")
	if err != nil {
		t.Fatalf("NormalizeDate returned error: %v", err)
	}
	if got != "05 травня 2024 р." {
		t.Errorf("got %q, want %q", got, "05 травня 2024 р.")
	}
}

func TestNormalizeDatePassesThroughPaddedDay(t *testing.T) {
	got, err := NormalizeDate("15 січня 2025 р.")
	if err != nil {
		t.Fatalf("NormalizeDate returned error: %v", err)
	}
	if got != "15 січня 2025 р." {
		t.Errorf("got %q, want %q", got, "15 січня 2025 р.")
	}
}

func TestNormalizeDateRejectsUnknownMonth(t *testing.T) {
	_, err := NormalizeDate("5 foo 2024 р.")
	var dfe *DateFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("expected DateFormatError, got %v", err)
	}
	if !strings.Contains(dfe.Error(), "5 foo 2024") {
		t.Errorf("error should name the offending input, got %q", dfe.Error())
	}
}

func TestNormalizeDateRejectsCyrillicNonMonth(t *testing.T) {
	_, err := NormalizeDate("5 вчора 2024 р.")
	var dfe *DateFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("expected DateFormatError, got %v", err)
	}
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024-05-05", "травня 5 2024 р."} {
		if _, err := NormalizeDate(input); err == nil {
			t.Errorf("NormalizeDate(%q) should fail", input)
		}
	}
}
