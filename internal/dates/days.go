package dates

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// maxOffsetDays bounds day offsets before any calendar arithmetic so the
// float to int conversion cannot overflow.
const maxOffsetDays = 2 * config.MaxTimeMillis / config.MillisPerDay

// DifferenceInDays returns the whole days between the epoch and value,
// floored. Unparsable input yields 0.
func (c *Converter) DifferenceInDays(value string) int {
	t, ok := parseDate(value, c.loc())
	if !ok {
		return 0
	}
	diff := t.UnixMilli() - c.epoch().UnixMilli()
	return int(floorDiv(diff, config.MillisPerDay))
}

// DateFromDays renders the epoch plus days as the locale short date.
func (c *Converter) DateFromDays(days int) string {
	return c.offsetDate(days).Format(c.shortLayout())
}

// ISODateFromDays renders the epoch plus days as an ISO-8601 instant.
// Fractional days are truncated. It reports false for NaN or infinite
// input and for results outside the representable range.
func (c *Converter) ISODateFromDays(days float64) (string, bool) {
	if math.IsNaN(days) || math.IsInf(days, 0) {
		return "", false
	}
	days = math.Trunc(days)
	if math.Abs(days) > maxOffsetDays {
		return "", false
	}
	t := c.offsetDate(int(days))
	if ms := t.UnixMilli(); ms < -config.MaxTimeMillis || ms > config.MaxTimeMillis {
		return "", false
	}
	return formatISO(t), true
}

// LocaleDateStringFromDays renders the epoch plus days as a long US English
// date ("Monday, January 3, 2000") in zone, America/Los_Angeles by default.
// An unknown zone yields an empty string.
func (c *Converter) LocaleDateStringFromDays(days int, zone string) string {
	if zone == "" {
		zone = config.DefaultZonePacific
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		c.log().Error(config.MsgZoneUnknown,
			config.LogKeyZone, zone,
			config.LogKeyError, err)
		return ""
	}
	return c.renderOffsetDateIn(days, loc)
}

// renderOffsetDateIn computes the offset date in the local zone, reads its
// short date rendering back as local midnight and only then renders that
// instant in loc. When loc is west of the local zone the displayed day is
// the previous one.
func (c *Converter) renderOffsetDateIn(days int, loc *time.Location) string {
	midnight, ok := parseDate(c.DateFromDays(days), c.loc())
	if !ok {
		return config.InvalidDate
	}
	return midnight.In(loc).Format(config.LayoutLongDate)
}

var clockSeparators = regexp.MustCompile(`:|\s`)

// DateFromUTCDaysWithTime renders the epoch plus days, with the time of day
// set from an "hh:mm A" string, as "MM/DD/YYYY". A blank time of day means
// midnight. Unreadable hours or minutes yield "Invalid Date".
func (c *Converter) DateFromUTCDaysWithTime(days int, timeOfDay string) string {
	if strings.TrimSpace(timeOfDay) == "" {
		timeOfDay = config.DefaultTimeOfDay
	}
	parts := clockSeparators.Split(timeOfDay, -1)

	hour, ok := leadingInt(parts[0])
	if !ok || len(parts) < 2 {
		return config.InvalidDate
	}
	minute, ok := leadingInt(parts[1])
	if !ok {
		return config.InvalidDate
	}

	meridiem := ""
	if len(parts) > 2 {
		meridiem = parts[2]
	}
	switch {
	case meridiem == "PM" && hour < 12:
		hour += 12
	case meridiem == "AM" && hour == 12:
		hour = 0
	}

	d := c.offsetDate(days)
	t := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, c.loc())
	if !IsValidDate(&t) {
		return config.InvalidDate
	}
	return t.Format(config.LayoutDateSlash)
}
