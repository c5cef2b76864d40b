package dates

import (
	"strings"
	"time"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// ConvertToUTC reads a "YYYY-MM-DDTHH:mm" wall-clock value in the local
// zone and renders it in UTC with the same layout. Unreadable input yields
// "Invalid date".
func (c *Converter) ConvertToUTC(value string) string {
	t, ok := parseWallClock(value, c.loc())
	if !ok {
		return config.InvalidFormat
	}
	return t.UTC().Format(config.LayoutDateTimeLocal)
}

// UTCTimeToTimezone converts a UTC instant to zone (Etc/UTC by default)
// and renders it as "YYYY-MM-DDTHH:mm". Instants landing in the 17:00 hour
// of the target zone are moved to the next calendar day. It reports false
// for empty input; unreadable input yields "Invalid date".
func (c *Converter) UTCTimeToTimezone(value, zone string) (string, bool) {
	if value == "" {
		return "", false
	}
	t, ok := parseUTC(value)
	if !ok {
		return config.InvalidFormat, true
	}
	local := t.In(c.zone(zone, config.DefaultZoneUTC, time.UTC))
	if local.Hour() == config.ClockPM {
		local = local.AddDate(0, 0, 1)
	}
	return local.Format(config.LayoutDateTimeLocal), true
}

// SlotTime combines a day offset and a military time as wall-clock values
// in zone, America/Los_Angeles by default.
func (c *Converter) SlotTime(day, military int, zone string) time.Time {
	d := c.offsetDate(day)
	hour, minute := splitMilitary(military)
	loc := c.zone(zone, config.DefaultZonePacific, c.loc())
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
}

// ConvertDayAndTimeToTimezone renders SlotTime as "YYYY-MM-DDTHH:mm".
// It reports false when day is 0.
func (c *Converter) ConvertDayAndTimeToTimezone(day, military int, zone string) (string, bool) {
	if day == 0 {
		return "", false
	}
	return c.SlotTime(day, military, zone).Format(config.LayoutDateTimeLocal), true
}

// DateStringToDayAndTime splits a date string into a day offset and a UTC
// military time, truncated to the minute. The day offset is computed from
// the UTC wall-clock value read back as local time. Empty, "Invalid date"
// or unparsable input yields the zero DayAndTime.
func (c *Converter) DateStringToDayAndTime(value string) DayAndTime {
	if value == "" || value == config.InvalidFormat {
		c.log().Info(config.MsgDefaultDayTime, config.LogKeyValue, value)
		return DayAndTime{}
	}
	t, ok := parseDate(value, c.loc())
	if !ok || !IsValidDate(&t) {
		c.log().Info(config.MsgDefaultDayTime, config.LogKeyValue, value)
		return DayAndTime{}
	}

	minutes := formatISO(t)[:len(config.LayoutDateTimeLocal)]
	u := t.UTC()
	return DayAndTime{
		Day:  c.DifferenceInDays(minutes),
		Time: u.Hour()*config.MilitaryHourFactor + u.Minute(),
	}
}

// ConvertToDateTimeUTC combines a "MM/DD/YYYY" date and an "hh:mm AM/PM"
// time, both local wall-clock, into a UTC "YYYY-MM-DDTHH:mm" string.
// A "PM" meridiem always adds 12 hours, so "12:30 PM" reads as 00:30 the
// next day. Years 0 to 99 are read as 1900 to 1999. It reports false when
// either argument is empty or a component is not a number.
func (c *Converter) ConvertToDateTimeUTC(date, clock string) (string, bool) {
	if date == "" || clock == "" {
		return "", false
	}
	dateParts := strings.Split(date, "/")
	clockParts := strings.Split(clock, " ")
	hm := strings.Split(clockParts[0], ":")

	month, ok1 := component(dateParts, 0)
	day, ok2 := component(dateParts, 1)
	year, ok3 := component(dateParts, 2)
	hour, ok4 := component(hm, 0)
	minute, ok5 := component(hm, 1)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return "", false
	}
	if len(clockParts) > 1 && clockParts[1] == "PM" {
		hour += 12
	}
	if year >= 0 && year <= 99 {
		year += 1900
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, c.loc())
	if !IsValidDate(&t) {
		return "", false
	}
	return formatISO(t)[:len(config.LayoutDateTimeLocal)], true
}

// component converts parts[i] with Number semantics; a missing part is NaN.
func component(parts []string, i int) (int, bool) {
	if i >= len(parts) {
		return 0, false
	}
	return toComponent(parts[i])
}
