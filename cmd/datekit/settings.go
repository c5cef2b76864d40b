package main

import (
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) settingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save-settings",
		Short: "Write the effective settings, flags included, to the --config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.SaveSettings(a.configPath, a.settings); err != nil {
				return err
			}
			a.logger.Info(config.MsgSettingsSaved,
				config.LogKeyComponent, config.CompSettings,
				config.LogKeyFile, a.configPath,
			)
			a.println(a.configPath)
			return nil
		},
	}
}
