// Package calendar exports scheduled slots (a day offset plus a military
// time in a zone) as an iCalendar feed.
package calendar

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/dates"
	"gopkg.in/yaml.v3"
)

// Slot is a scheduled time: a day offset since 2000-01-01 and a military
// time, both wall-clock values in Zone (America/Los_Angeles when empty).
type Slot struct {
	Day      int           `yaml:"day" json:"day"`
	Time     int           `yaml:"time" json:"time"`
	Zone     string        `yaml:"zone,omitempty" json:"zone,omitempty"`
	Summary  string        `yaml:"summary,omitempty" json:"summary,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// UID returns a stable identifier derived from the slot content.
func (s Slot) UID() string {
	input := fmt.Sprintf(config.FormatHashInput, s.Day, s.Time, s.Zone, s.Summary)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.CalendarDomain)
}

// Exporter renders slots as VEVENTs.
type Exporter struct {
	Clock     dates.Clock // Interface for time mocking.
	Converter *dates.Converter
	Logger    *slog.Logger

	// Name is the X-WR-CALNAME of the feed; config.CalendarName when empty.
	Name string
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger.With(config.LogKeyComponent, config.CompCalendar)
}

func (e *Exporter) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

// Render encodes slots into an iCalendar document. Slots with a zero day
// are skipped, the same way ConvertDayAndTimeToTimezone rejects them. When
// nothing remains the minimal VCALENDAR stub is returned.
func (e *Exporter) Render(slots []Slot) ([]byte, error) {
	conv := e.Converter
	if conv == nil {
		conv = &dates.Converter{Clock: e.Clock}
	}

	name := e.Name
	if name == "" {
		name = config.CalendarName
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.CalendarVersion)
	cal.Props.SetText(config.PropProdid, config.CalendarProdID)
	cal.Props.SetText(config.PropXWRCalName, name)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(e.now().UTC())

	skipped := 0
	for _, slot := range slots {
		if slot.Day == 0 {
			skipped++
			e.logger().Debug(config.MsgSlotSkipped, config.LogKeyValue, slot.Time)
			continue
		}

		duration := slot.Duration
		if duration <= 0 {
			duration = config.DefaultSlotDuration
		}
		summary := slot.Summary
		if summary == "" {
			summary = config.DefaultSlotSummary
		}
		start := conv.SlotTime(slot.Day, slot.Time, slot.Zone)

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, slot.UID())
		event.Props.SetText(config.PropSummary, summary)
		event.Props.SetText(config.PropDescription,
			fmt.Sprintf(config.FormatDescription, slot.Day, slot.Time, start.Location().String()))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDateTime(start)
		event.Props.Set(dtStartProp)

		dtEndProp := ical.NewProp(config.PropDTEnd)
		dtEndProp.SetDateTime(start.Add(duration))
		event.Props.Set(dtEndProp)

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		e.logSuccess(0, skipped)
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	e.logSuccess(len(cal.Children), skipped)
	return buf.Bytes(), nil
}

// Encode writes the rendered calendar to w.
func (e *Exporter) Encode(w io.Writer, slots []Slot) error {
	data, err := e.Render(slots)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (e *Exporter) logSuccess(count, skipped int) {
	e.logger().Info(config.MsgExportSuccess,
		config.LogKeyCount, count,
		config.LogKeySkipped, skipped,
	)
}

// LoadSlots reads a YAML list of slots.
func LoadSlots(path string) ([]Slot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSlotsRead, err)
	}
	var slots []Slot
	if err := yaml.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSlotsParse, err)
	}
	return slots, nil
}
