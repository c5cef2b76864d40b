package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/dates"
	"github.com/spf13/cobra"
)

// intArg parses args[i] as a base 10 integer.
func intArg(args []string, i int) (int, error) {
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", config.ErrArgument, args[i], err)
	}
	return n, nil
}

// floatArg parses args[i] as a number; "NaN" is accepted.
func floatArg(args []string, i int) (float64, error) {
	f, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", config.ErrArgument, args[i], err)
	}
	return f, nil
}

// optArg returns args[i], or "" so the per-function default applies.
func optArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func (a *app) conversionCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "datetime <date>",
			Short: "Format a date as \"M/D/YY hh:mm AM\"",
			Args:  cobra.ExactArgs(1),
			Run: func(_ *cobra.Command, args []string) {
				a.println(a.conv.FormatDateTime(args[0]))
			},
		},
		{
			Use:   "date <date>",
			Short: "Format a date as a locale short date",
			Args:  cobra.ExactArgs(1),
			Run: func(_ *cobra.Command, args []string) {
				a.println(a.conv.FormatDate(args[0]))
			},
		},
		{
			Use:   "days-since <date>",
			Short: "Whole days between 2000-01-01 and date",
			Args:  cobra.ExactArgs(1),
			Run: func(_ *cobra.Command, args []string) {
				a.println(a.conv.DifferenceInDays(args[0]))
			},
		},
		{
			Use:   "from-days <days>",
			Short: "Locale short date of a day offset",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				days, err := intArg(args, 0)
				if err != nil {
					return err
				}
				a.println(a.conv.DateFromDays(days))
				return nil
			},
		},
		{
			Use:   "iso <days>",
			Short: "ISO instant of a day offset",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				days, err := floatArg(args, 0)
				if err != nil {
					return err
				}
				a.printNullable(a.conv.ISODateFromDays(days))
				return nil
			},
		},
		{
			Use:   "long-date <days> [zone]",
			Short: "Long locale date of a day offset in zone",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(_ *cobra.Command, args []string) error {
				days, err := intArg(args, 0)
				if err != nil {
					return err
				}
				a.println(a.conv.LocaleDateStringFromDays(days, optArg(args, 1)))
				return nil
			},
		},
		{
			Use:   "military <hhmm>",
			Short: "Render a military time as hh:mm AM",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				v, err := intArg(args, 0)
				if err != nil {
					return err
				}
				a.println(dates.MilitaryToRegularTime(v))
				return nil
			},
		},
		{
			Use:   "military-tz <hhmm> [zone]",
			Short: "Render a UTC military time as hh:mm AM in zone",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(_ *cobra.Command, args []string) error {
				v, err := intArg(args, 0)
				if err != nil {
					return err
				}
				a.println(a.conv.MilitaryToRegularTimeInZone(v, optArg(args, 1)))
				return nil
			},
		},
		{
			Use:   "to-utc <YYYY-MM-DDTHH:mm>",
			Short: "Convert a local wall-clock value to UTC",
			Args:  cobra.ExactArgs(1),
			Run: func(_ *cobra.Command, args []string) {
				a.println(a.conv.ConvertToUTC(args[0]))
			},
		},
		{
			Use:   "utc-to-tz <instant> [zone]",
			Short: "Convert a UTC instant to zone",
			Args:  cobra.RangeArgs(1, 2),
			Run: func(_ *cobra.Command, args []string) {
				a.printNullable(a.conv.UTCTimeToTimezone(args[0], optArg(args, 1)))
			},
		},
		{
			Use:   "day-time-to-tz <days> <hhmm> [zone]",
			Short: "Combine a day offset and a military time in zone",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(_ *cobra.Command, args []string) error {
				days, err := intArg(args, 0)
				if err != nil {
					return err
				}
				military, err := intArg(args, 1)
				if err != nil {
					return err
				}
				a.printNullable(a.conv.ConvertDayAndTimeToTimezone(days, military, optArg(args, 2)))
				return nil
			},
		},
		{
			Use:   "day-and-time <date>",
			Short: "Split a date into a day offset and a UTC military time",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				out, err := json.Marshal(a.conv.DateStringToDayAndTime(args[0]))
				if err != nil {
					return err
				}
				a.println(string(out))
				return nil
			},
		},
		{
			Use:   "time-to-tz <hh:mm A> [zone]",
			Short: "Military time in zone of a local time of day",
			Args:  cobra.RangeArgs(1, 2),
			Run: func(_ *cobra.Command, args []string) {
				a.printNullable(a.conv.LocalTimeToTargetTimezone(args[0], optArg(args, 1)))
			},
		},
		{
			Use:   "time-to-number <hh:mm A>",
			Short: "Military time of a time of day",
			Args:  cobra.ExactArgs(1),
			Run: func(_ *cobra.Command, args []string) {
				a.printNullable(dates.LocalTimeToNumber(args[0]))
			},
		},
		{
			Use:   "utc-to-local <hhmm>",
			Short: "Local hh:mm AM of a UTC military time",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				v, err := floatArg(args, 0)
				if err != nil {
					return err
				}
				a.printNullable(a.conv.UTCTimeToLocalTime(v))
				return nil
			},
		},
		{
			Use:   "datetime-utc <MM/DD/YYYY> <hh:mm AM>",
			Short: "Combine a local date and time into a UTC value",
			Args:  cobra.ExactArgs(2),
			Run: func(_ *cobra.Command, args []string) {
				a.printNullable(a.conv.ConvertToDateTimeUTC(args[0], args[1]))
			},
		},
		{
			Use:   "utc-days-with-time <days> [hh:mm AM]",
			Short: "Locale date of a day offset at a time of day",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(_ *cobra.Command, args []string) error {
				days, err := intArg(args, 0)
				if err != nil {
					return err
				}
				a.println(a.conv.DateFromUTCDaysWithTime(days, optArg(args, 1)))
				return nil
			},
		},
	}
}
