package dates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Layouts carrying an explicit offset; the location argument is ignored.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon, 02 Jan 2006 15:04:05 GMT",
	"Mon, 02 Jan 2006 15:04:05 -0700",
}

// ISO dates without a time of day are UTC.
var isoDateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// ISO date-times without an offset.
var isoLocalLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Legacy shapes, evaluated in the local zone. Values are upper-cased first so that am/pm match.
var legacyLocalLayouts = []string{
	"1/2/2006",
	"1/2/2006 3:04 PM",
	"1/2/2006, 3:04 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/2006, 3:04:05 PM",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006, 15:04:05",
	"2006/1/2",
	"2006/1/2 15:04",
	"2006/1/2 15:04:05",
	"January 2, 2006",
	"January 2, 2006 15:04:05",
	"January 2, 2006 3:04 PM",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"Monday, January 2, 2006",
	"Mon Jan 2 2006",
	"Mon Jan 02 2006 15:04:05",
}

// parenthetical trails the long date form, e.g. "(Pacific Daylight Time)".
var parenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

func parseIn(value string, layouts []string, loc *time.Location) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDate reads the date shapes a browser client sends. Offsets are
// honoured and ISO date-only values are UTC; anything else is wall-clock
// time in loc.
func parseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(parenthetical.ReplaceAllString(value, ""))
	if value == "" {
		return time.Time{}, false
	}
	if m := extendedYear.FindStringSubmatch(value); m != nil {
		return parseExtendedYear(m[1], m[2], loc)
	}
	if t, ok := parseIn(value, zonedLayouts, loc); ok {
		return t, true
	}
	if t, ok := parseIn(value, isoDateLayouts, time.UTC); ok {
		return t, true
	}
	if t, ok := parseIn(value, isoLocalLayouts, loc); ok {
		return t, true
	}
	return parseIn(strings.ToUpper(value), legacyLocalLayouts, loc)
}

// extendedYear matches the six digit signed year form written by formatISO
// for years outside 0..9999, e.g. "+010213-01-01T00:00:00.000Z".
var extendedYear = regexp.MustCompile(`^([+-]\d{6})(-.*)$`)

// placeholderYear is a leap year so that February 29 survives the first
// parse; the day is checked again once the real year is applied.
const placeholderYear = 2000

// parseExtendedYear parses rest behind a placeholder year and then moves
// the result to the real year. "-000000" is rejected.
func parseExtendedYear(year, rest string, loc *time.Location) (time.Time, bool) {
	if year == "-000000" {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	t, ok := parseDate(strconv.Itoa(placeholderYear)+rest, loc)
	if !ok {
		return time.Time{}, false
	}
	shifted := t.AddDate(y-placeholderYear, 0, 0)
	if shifted.Month() != t.Month() || shifted.Day() != t.Day() {
		return time.Time{}, false
	}
	return shifted, true
}

// parseUTC reads ISO 8601 first, with values lacking an offset read as
// UTC, then falls back to parseDate in UTC.
func parseUTC(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, ok := parseIn(value, zonedLayouts, time.UTC); ok {
		return t, true
	}
	if t, ok := parseIn(value, isoDateLayouts, time.UTC); ok {
		return t, true
	}
	if t, ok := parseIn(value, isoLocalLayouts, time.UTC); ok {
		return t, true
	}
	return parseDate(value, time.UTC)
}

// maxComponent exceeds any date component that stays within the time value
// range, even when expressed in minutes.
const maxComponent = 1e15

// wallClockPattern matches the forgiving 'YYYY-MM-DDTHH:mm' format parse:
// any non-digit separators, optional time, trailing text ignored.
var wallClockPattern = regexp.MustCompile(`^\D*(\d{4})\D+(\d{1,2})\D+(\d{1,2})(?:\D+(\d{1,2}))?(?:\D+(\d{1,2}))?`)

// parseWallClock parses a "YYYY-MM-DDTHH:mm" wall-clock value in loc.
func parseWallClock(value string, loc *time.Location) (time.Time, bool) {
	m := wallClockPattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, false
	}
	n := make([]int, 5)
	for i, s := range m[1:] {
		if s == "" {
			continue
		}
		n[i], _ = strconv.Atoi(s)
	}
	year, month, day, hour, minute := n[0], n[1], n[2], n[3], n[4]
	if month < 1 || month > 12 || day < 1 || day > int(datetime.DaysInMonth(year, datetime.Month(month))) {
		return time.Time{}, false
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), true
}

// clockPattern matches the forgiving 'hh:mm A' parse: "05:00 PM", "5 pm",
// "17:30", "9.15a".
var clockPattern = regexp.MustCompile(`^\s*(\d{1,2})(?:[^\d\sapAP]?(\d{1,2}))?\s*(?:([aApP])\.?[mM]?\.?)?`)

// parseClock parses an "hh:mm A" time of day. A 12 o'clock hour is moved to
// 0 for AM, hours before noon gain 12 for PM.
func parseClock(value string) (datetime.TimeOfDay, bool) {
	m := clockPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "a":
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour < 12 {
			hour += 12
		}
	}
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return datetime.NewTimeOfDay(hour, minute, 0), true
}

// toComponent converts a numeric date component, truncating fractions.
// Blank input is zero. Magnitudes that can only produce an out of range
// date are rejected.
func toComponent(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > maxComponent {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

// leadingInt reads leading whitespace, an optional sign and the longest
// run of decimal digits; anything after them is ignored.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\v\f\r \uFEFF")
	sign := 1
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return sign * n, true
}
