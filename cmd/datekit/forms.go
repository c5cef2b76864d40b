package main

import (
	"errors"
	"fmt"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/bus"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/clipboard"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/forms"
	"github.com/spf13/cobra"
)

func (a *app) formCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "slug <text>",
			Short: "Lower-case text and replace special characters with _",
			Args:  cobra.ExactArgs(1),
			Run: func(_ *cobra.Command, args []string) {
				a.println(forms.FilterSpecialChars(args[0]))
			},
		},
		{
			Use:       "check <email|password|code> <value>",
			Short:     "Run the credential rules of a field",
			Args:      cobra.ExactArgs(2),
			ValidArgs: []string{config.FieldEmail, config.FieldPassword, config.FieldCode},
			RunE: func(_ *cobra.Command, args []string) error {
				return a.check(args[0], args[1])
			},
		},
		{
			Use:   "copy <value>",
			Short: "Copy a value to the system clipboard",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.copy(cmd, args[0])
			},
		},
	}
}

// check prints the translated message of every failing rule, or the OK
// status when the value passes.
func (a *app) check(name, value string) error {
	creds := forms.NewCredentials()
	var field *forms.Field
	switch name {
	case config.FieldEmail:
		field = &creds.Email
	case config.FieldPassword:
		field = &creds.Password
	case config.FieldCode:
		field = &creds.Code
	default:
		return fmt.Errorf("%s: %q", config.ErrUnknownField, name)
	}

	field.Value = value
	failed := field.Check()
	if len(failed) == 0 {
		a.println(a.catalog.Msg(config.TKeyStatusOK))
		return nil
	}
	for _, key := range failed {
		a.println(a.catalog.Msg(key))
	}
	return errors.New(config.ErrCheckFailed)
}

// copy writes value to the clipboard and prints the notification the
// copier publishes.
func (a *app) copy(cmd *cobra.Command, value string) error {
	unsubscribe := bus.Subscribe(a.bus, bus.Notifications, func(n bus.Notification) {
		a.println(n.Text)
	})
	defer unsubscribe()

	copier := &clipboard.Copier{
		Clipboard: a.clipboard,
		Bus:       a.bus,
		Message:   a.catalog.Msg(config.TKeyCopied),
		Logger:    a.logger,
	}
	if !copier.Copy(cmd.Context(), value) {
		return errors.New(config.ErrCopyFailed)
	}
	return nil
}
