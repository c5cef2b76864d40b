package dates

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// splitMilitary decomposes a military time integer. The hour is floored and
// the minute keeps the sign of v, so out of range values are not rejected.
func splitMilitary(v int) (hour, minute int) {
	return int(floorDiv(int64(v), config.MilitaryHourFactor)), v % config.MilitaryHourFactor
}

// MilitaryToRegularTime renders a military time as "H:MM AM/PM" with the
// hour unpadded; midnight and noon print as 12.
func MilitaryToRegularTime(v int) string {
	hour, minute := splitMilitary(v)
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	regular := hour % 12
	if regular == 0 {
		regular = 12
	}
	return fmt.Sprintf("%d:%02d %s", regular, minute, period)
}

// MilitaryToRegularTimeInZone reads v as a UTC time of day on the current
// date and renders it as "hh:mm AM/PM" in zone, America/Los_Angeles by
// default.
func (c *Converter) MilitaryToRegularTimeInZone(v int, zone string) string {
	hour, minute := splitMilitary(v)
	now := c.now().UTC()
	source := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	return source.In(c.zone(zone, config.DefaultZonePacific, c.loc())).Format(config.LayoutClock)
}

// LocalTimeToNumber parses an "hh:mm AM/PM" string into a military time.
// It reports false for empty or unreadable input.
func LocalTimeToNumber(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	tod, ok := parseClock(value)
	if !ok {
		return 0, false
	}
	return tod.Hour()*config.MilitaryHourFactor + tod.Minute(), true
}

// LocalTimeToTargetTimezone parses an "hh:mm AM/PM" string as wall-clock
// time already in zone (Etc/UTC by default) on the current date and
// re-encodes it as a military time in that zone. Only wall-clock times
// skipped by a DST transition change value. It reports false for empty or
// unreadable input.
func (c *Converter) LocalTimeToTargetTimezone(value, zone string) (int, bool) {
	if value == "" {
		return 0, false
	}
	tod, ok := parseClock(value)
	if !ok {
		return 0, false
	}
	loc := c.zone(zone, config.DefaultZoneUTC, c.loc())
	now := c.now().In(loc)
	t := time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, loc)
	n, err := strconv.Atoi(t.Format(config.LayoutClockNumber))
	if err != nil {
		return 0, false
	}
	return n, true
}

var clockDigits = regexp.MustCompile(`\d\d?`)

// UTCTimeToLocalTime reads v as a UTC military time on the current date and
// renders it as "hh:mm AM/PM" in the local zone. It reports false for NaN.
// Values that do not form a time of day yield "Invalid date".
func (c *Converter) UTCTimeToLocalTime(v float64) (string, bool) {
	if math.IsNaN(v) {
		return "", false
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	digits := strconv.FormatFloat(v, 'f', -1, 64)
	if len(digits) < 4 {
		digits = strings.Repeat("0", 4-len(digits)) + digits
	}

	match := clockDigits.FindStringIndex(digits)
	if match == nil {
		return config.InvalidFormat, true
	}
	hour, _ := strconv.Atoi(digits[match[0]:match[1]])
	minute := 0
	if rest := digits[match[1]:]; rest != "" {
		if m := clockDigits.FindString(rest); m != "" {
			minute, _ = strconv.Atoi(m)
		}
	}
	if hour > 23 || minute > 59 {
		return config.InvalidFormat, true
	}

	now := c.now().UTC()
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	return t.In(c.loc()).Format(config.LayoutClock), true
}
