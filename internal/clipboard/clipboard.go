// Package clipboard copies values to the system clipboard and announces
// success on the event bus.
package clipboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/bus"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// Writer abstracts the system clipboard to allow testing.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Copier writes values to a clipboard and publishes a success
// notification.
type Copier struct {
	Clipboard Writer // Defaults to System.
	Bus       *bus.Bus

	// Message is the notification text, typically the translated
	// notif_copied entry.
	Message string

	Logger *slog.Logger
}

// Copy writes value and, on success, publishes a success notification. It
// reports whether the value reached the clipboard; failures are logged and
// nothing is published.
func (c *Copier) Copy(ctx context.Context, value string) bool {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(config.LogKeyComponent, config.CompClipboard)

	if err := c.write(ctx, value); err != nil {
		logger.Warn(config.MsgCopyFailed, config.LogKeyError, err)
		return false
	}

	bus.Publish(c.Bus, bus.Notifications, bus.Notification{
		Color: bus.NotificationSuccess,
		Text:  c.Message,
	})
	logger.Debug(config.MsgCopied,
		config.LogKeyCount, c.Bus.Subscribers(bus.KindNotification))
	return true
}

func (c *Copier) write(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w := c.Clipboard
	if w == nil {
		w = System{}
	}
	if err := w.WriteAll(value); err != nil {
		return fmt.Errorf("%s: %w", config.ErrClipboardWrite, err)
	}
	return nil
}
