package ledger

import (
	"strconv"
	"time"
)

// DateLayout is the 8-digit calendar date format used for input and output.
const DateLayout = "20060102"

// ParseDate parses an 8-digit YYYYMMDD date into a UTC midnight time.
func ParseDate(text string) (time.Time, error) {
	if len(text) != len(DateLayout) || !isDigits(text) {
		return time.Time{}, ErrInvalidDate
	}

	date, err := time.Parse(DateLayout, text)
	if err != nil || date.Year() < 1 {
		return time.Time{}, ErrInvalidDate
	}

	return date, nil
}

// FormatDate renders a date as YYYYMMDD.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// Month is a calendar month, the period of a monthly statement.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a 6-digit YYYYMM value.
func ParseMonth(text string) (Month, error) {
	if len(text) != 6 || !isDigits(text) {
		return Month{}, ErrInvalidMonth
	}

	year, _ := strconv.Atoi(text[:4])
	month, _ := strconv.Atoi(text[4:])
	if year < 1 || month < 1 || month > 12 {
		return Month{}, ErrInvalidMonth
	}

	return Month{Year: year, Month: time.Month(month)}, nil
}

// First returns day 1 of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last calendar day of the month.
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

func (m Month) String() string {
	return m.First().Format("200601")
}

func isDigits(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
