package main

import (
	"fmt"
	"io"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/bus"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/clipboard"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/dates"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/locale"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/logging"
	"github.com/spf13/cobra"
)

// app holds the dependencies shared by every subcommand. They are built
// once the flags are parsed, in setup.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// Root flags.
	configPath string
	debug      bool
	lang       string
	zone       string

	// Overridable in tests.
	clock     dates.Clock
	clipboard clipboard.Writer

	settings *config.Settings
	logger   *slog.Logger
	catalog  *locale.Catalog
	conv     *dates.Converter
	bus      *bus.Bus
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:     stdout,
		stderr:     stderr,
		configPath: config.SettingsFile,
		clock:      dates.RealClock{},
		clipboard:  clipboard.System{},
		logger:     slog.New(slog.DiscardHandler),
		bus:        bus.New(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Scheduling date conversions and schedule export",
		Version:       config.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			ctx := logging.WithComponent(ctxlog.WithLogger(cmd.Context(), a.logger), config.CompMain)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName, config.Version, config.Commit, config.Date))

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, config.FlagConfig, a.configPath, config.FlagDescConfig)
	flags.BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)
	flags.StringVar(&a.lang, config.FlagLanguage, "", config.FlagDescLanguage)
	flags.StringVar(&a.zone, config.FlagZone, "", config.FlagDescZone)

	root.AddCommand(a.conversionCommands()...)
	root.AddCommand(a.formCommands()...)
	root.AddCommand(a.scheduleCommands()...)
	root.AddCommand(a.settingsCommand())
	return root
}

// setup loads the settings, applies the flag overrides and wires the
// logger, the catalog and the converter.
func (a *app) setup() error {
	s, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		s.Debug = true
	}
	if a.lang != "" {
		s.Language = a.lang
	}
	if a.zone != "" {
		s.LocalZone = a.zone
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSettingsInvalid, err)
	}
	a.settings = s

	a.logger = logging.New(a.stderr, s)
	logging.LogStartup(a.logger, s)

	catalog, err := locale.New(s.Language, a.logger)
	if err != nil {
		return err
	}
	a.catalog = catalog

	loc, err := s.Location()
	if err != nil {
		return err
	}
	a.conv = &dates.Converter{
		Clock:           a.clock,
		Location:        loc,
		ShortDateLayout: catalog.ShortDateLayout(),
		Logger:          a.logger,
	}
	return nil
}

// println writes one line of command output.
func (a *app) println(v any) {
	fmt.Fprintln(a.stdout, v)
}

// printNullable writes value, or "null" when ok is false.
func (a *app) printNullable(value any, ok bool) {
	if !ok {
		a.println(config.NullOutput)
		return
	}
	a.println(value)
}
