package services

import (
	"fmt"
	"regexp"
	"time"
)

// DateFormatError reports a publish-date string the normalizer does not
// recognize. It names the offending input so the log is actionable.
type DateFormatError struct {
	Input string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("unrecognized date format: %q", e.Input)
}

// todayPrefix is how olx.ua labels same-day publication dates.
const todayPrefix = "Сьогодні"

// monthsUK maps month numbers to the genitive Ukrainian month names used in
// publish dates.
var monthsUK = [12]string{
	"січня", "лютого", "березня", "квітня", "травня", "червня",
	"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
}

var datePattern = regexp.MustCompile(`^(\d{1,2}) ([а-яіїє]+) (\d{4}) р\.`)

// NormalizeDate converts a localized publish-date string into the canonical
// "DD <month> YYYY р." form. Inputs starting with the localized "Today" are
// replaced with the current date; otherwise the day is zero-padded and the
// month name validated. Pure function; malformed input returns a
// DateFormatError.
func NormalizeDate(input string) (string, error) {
	if len(input) >= len(todayPrefix) && input[:len(todayPrefix)] == todayPrefix {
		now := time.Now()
		return fmt.Sprintf("%02d %s %d р.", now.Day(), monthsUK[now.Month()-1], now.Year()), nil
	}

	m := datePattern.FindStringSubmatch(input)
	if m == nil {
		return "", &DateFormatError{Input: input}
	}

	day, month, year := m[1], m[2], m[3]
	if len(day) == 1 {
		day = "0" + day
	}

	if !validMonthUK(month) {
		return "", &DateFormatError{Input: input}
	}

	return fmt.Sprintf("%s %s %s р.", day, month, year), nil
}

func validMonthUK(name string) bool {
	for _, m := range monthsUK {
		if m == name {
			return true
		}
	}
	return false
}
