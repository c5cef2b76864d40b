package dates

import (
	"fmt"
	"strconv"
	"time"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// FormatDateTime renders value as "M/D/YY hh:mm AM/PM" in the local zone.
// Empty or unparsable input yields "-".
func (c *Converter) FormatDateTime(value string) string {
	if value == "" {
		return config.PlaceholderEmpty
	}
	t, ok := parseDate(value, c.loc())
	if !ok {
		return config.PlaceholderEmpty
	}
	t = t.In(c.loc())

	year := strconv.Itoa(t.Year())
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return fmt.Sprintf("%d/%d/%s %s", int(t.Month()), t.Day(), year, t.Format(config.LayoutClock))
}

// FormatDate renders value as the locale short date. Empty input yields
// "-" and unparsable input "Invalid Date".
func (c *Converter) FormatDate(value string) string {
	if value == "" {
		return config.PlaceholderEmpty
	}
	t, ok := parseDate(value, c.loc())
	if !ok {
		return config.InvalidDate
	}
	return t.In(c.loc()).Format(c.shortLayout())
}

// IsValidDate reports whether t is set and represents a real instant.
func IsValidDate(t *time.Time) bool {
	if t == nil || t.IsZero() {
		return false
	}
	ms := t.UnixMilli()
	return ms >= -config.MaxTimeMillis && ms <= config.MaxTimeMillis
}

// formatISO renders t as a UTC ISO instant with milliseconds. Years outside
// 0..9999 use the six digit signed form.
func formatISO(t time.Time) string {
	t = t.UTC()
	year := t.Year()
	if year >= 0 && year <= 9999 {
		return t.Format(config.LayoutISOMillis)
	}
	sign := "+"
	if year < 0 {
		sign = "-"
		year = -year
	}
	return fmt.Sprintf("%s%06d-%s", sign, year, t.Format("01-02T15:04:05.000Z"))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
