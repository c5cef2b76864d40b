// Package dates converts between the date encodings used by the scheduling
// UI: day offsets since 2000-01-01, military time integers, zone-local
// "YYYY-MM-DDTHH:mm" strings, ISO instants and locale strings.
//
// Each conversion validates its own input and reports failure through a
// sentinel ("-", "Invalid Date", "Invalid date", a false ok value or a zero
// DayAndTime) rather than an error.
package dates

import (
	"io"
	"log/slog"
	"time"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// Converter holds the environment the conversions depend on.
// The zero value is usable: it reads the real clock, uses time.Local as the
// process zone, the US short date layout and discards diagnostics.
type Converter struct {
	Clock Clock // Interface for time mocking.

	// Location is the process local zone.
	Location *time.Location

	// ShortDateLayout is the Go layout used for locale short dates.
	ShortDateLayout string

	Logger *slog.Logger
}

// DayAndTime is a day offset paired with a military time.
type DayAndTime struct {
	Day  int `json:"day"`
	Time int `json:"time"`
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c *Converter) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

func (c *Converter) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c *Converter) shortLayout() string {
	if c.ShortDateLayout == "" {
		return config.LayoutShortDate
	}
	return c.ShortDateLayout
}

func (c *Converter) log() *slog.Logger {
	if c.Logger == nil {
		return discardLogger
	}
	return c.Logger.With(config.LogKeyComponent, config.CompDates)
}

// zone resolves an IANA name, using def when name is empty. Unknown zones
// resolve to fallback so the instant keeps the offset it was parsed with.
func (c *Converter) zone(name, def string, fallback *time.Location) *time.Location {
	if name == "" {
		name = def
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		c.log().Warn(config.MsgZoneFallback,
			config.LogKeyZone, name,
			config.LogKeyError, err)
		return fallback
	}
	return loc
}

// epoch returns 2000-01-01 at local midnight.
func (c *Converter) epoch() time.Time {
	return time.Date(config.EpochYear, time.January, 1, 0, 0, 0, 0, c.loc())
}

// offsetDate returns local midnight days after the epoch. Calendar
// arithmetic is used so DST transitions do not shift the day.
func (c *Converter) offsetDate(days int) time.Time {
	return time.Date(config.EpochYear, time.January, 1+days, 0, 0, 0, 0, c.loc())
}
