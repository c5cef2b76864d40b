package main

import (
	"context"
	"time"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/calendar"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/server"
	"github.com/spf13/cobra"
)

// slotDefaults fills the slots left without a summary or a duration.
type slotDefaults struct {
	summary  string
	duration time.Duration
}

func (d slotDefaults) apply(slots []calendar.Slot) {
	for i := range slots {
		if slots[i].Summary == "" {
			slots[i].Summary = d.summary
		}
		if slots[i].Duration <= 0 {
			slots[i].Duration = d.duration
		}
	}
}

func (d *slotDefaults) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.summary, config.FlagSummary, config.DefaultSlotSummary, config.FlagDescSummary)
	cmd.Flags().DurationVar(&d.duration, config.FlagDuration, config.DefaultSlotDuration, config.FlagDescDuration)
}

func (a *app) exporter() *calendar.Exporter {
	return &calendar.Exporter{
		Clock:     a.clock,
		Converter: a.conv,
		Logger:    a.logger,
	}
}

// renderFile loads the slots file and renders it.
func (a *app) renderFile(path string, defaults slotDefaults) ([]byte, error) {
	slots, err := calendar.LoadSlots(path)
	if err != nil {
		return nil, err
	}
	defaults.apply(slots)
	return a.exporter().Render(slots)
}

func (a *app) scheduleCommands() []*cobra.Command {
	var icsDefaults slotDefaults
	ics := &cobra.Command{
		Use:   "ics <slots.yaml>",
		Short: "Export a slots file as an iCalendar document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := a.renderFile(args[0], icsDefaults)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}
	icsDefaults.bind(ics)

	var (
		serveDefaults slotDefaults
		port          string
		interval      time.Duration
	)
	serve := &cobra.Command{
		Use:   "serve <slots.yaml>",
		Short: "Publish a slots file as an iCalendar feed on localhost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := server.ValidatePort(port); err != nil {
				return err
			}
			return a.serve(cmd.Context(), port, interval, func() ([]byte, error) {
				return a.renderFile(args[0], serveDefaults)
			})
		},
	}
	serveDefaults.bind(serve)
	serve.Flags().StringVar(&port, config.FlagPort, config.DefaultPort, config.FlagDescPort)
	serve.Flags().DurationVar(&interval, config.FlagInterval, config.DefaultRefreshInterval, config.FlagDescInterval)

	return []*cobra.Command{ics, serve}
}

// serve runs the feed server and its refresh loop until ctx is cancelled.
func (a *app) serve(ctx context.Context, port string, interval time.Duration, render func() ([]byte, error)) error {
	srv := server.NewFeedServer(port, a.logger)
	srv.Clock = a.clock

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.Refresh(ctx, interval, render)
	}()

	err := srv.Start(ctx)
	cancel()
	<-done
	return err
}
