package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDay parses the day formats accepted by --on flags
// Supported formats:
// - "today", "yesterday"
// - X days ago (e.g., "3 days ago", "1 day ago")
// - yyyy-mm-dd (e.g., "2026-08-15")
// - dd/mm/yyyy (e.g., "15/08/2026")
// The result is midnight local time on that day.
func ParseDay(input string) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if day, err := parseDaysAgo(input, today); err == nil {
		return day, nil
	}

	if day, err := parseDateFormat(input); err == nil {
		return day, nil
	}

	return time.Time{}, fmt.Errorf("invalid day format. Use: today, yesterday, X days ago, yyyy-mm-dd, or dd/mm/yyyy")
}

// parseDaysAgo parses relative formats like "3 days ago"
func parseDaysAgo(input string, today time.Time) (time.Time, error) {
	agoRegex := regexp.MustCompile(`^(\d+)\s+(day|days)\s+ago$`)
	matches := agoRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative day format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}
	if amount < 0 || amount > 3650 {
		return time.Time{}, fmt.Errorf("days must be between 0 and 3650")
	}

	return today.AddDate(0, 0, -amount), nil
}

// parseDateFormat parses yyyy-mm-dd and dd/mm/yyyy formats
func parseDateFormat(input string) (time.Time, error) {
	if day, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return day, nil
	}

	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check the date is real (handles leap years, short months)
	if parsed.Day() != day || parsed.Month() != time.Month(month) || parsed.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return parsed, nil
}

// FormatDay formats a day for display, relative when close to now
func FormatDay(t time.Time) string {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	daysDiff := int(today.Sub(day).Hours() / 24)
	dateStr := day.Format("02/01/2006")

	switch {
	case daysDiff == 0:
		return "Today"
	case daysDiff == 1:
		return "Yesterday"
	case daysDiff > 1 && daysDiff <= 7:
		return fmt.Sprintf("%s (%d days ago)", dateStr, daysDiff)
	default:
		return dateStr
	}
}
