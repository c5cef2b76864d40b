package clipboard_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/bus"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/clipboard"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWriter simulates the system clipboard using `testify/mock`.
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteAll(text string) error {
	return m.Called(text).Error(0)
}

func TestCopy_PublishesSuccess(t *testing.T) {
	w := new(MockWriter)
	w.On("WriteAll", "ABC-123").Return(nil).Once()

	b := bus.New()
	var got []bus.Notification
	bus.Subscribe(b, bus.Notifications, func(n bus.Notification) { got = append(got, n) })

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := &clipboard.Copier{Clipboard: w, Bus: b, Message: "Copied to clipboard!", Logger: logger}
	assert.True(t, c.Copy(context.Background(), "ABC-123"))

	w.AssertExpectations(t)
	assert.Equal(t, []bus.Notification{{Color: bus.NotificationSuccess, Text: "Copied to clipboard!"}}, got)
	require.Contains(t, logs.String(), config.MsgCopied)
	assert.Contains(t, logs.String(), `"count":1`, "subscriber count is logged")
}

func TestCopy_FailureIsSwallowed(t *testing.T) {
	w := new(MockWriter)
	w.On("WriteAll", "x").Return(errors.New("no display")).Once()

	b := bus.New()
	published := false
	b.SubscribeAll(func(bus.Kind, any) { published = true })

	c := &clipboard.Copier{Clipboard: w, Bus: b}
	assert.False(t, c.Copy(context.Background(), "x"))
	assert.False(t, published, "nothing is published on failure")
	w.AssertExpectations(t)
}

func TestCopy_CancelledContext(t *testing.T) {
	w := new(MockWriter)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &clipboard.Copier{Clipboard: w}
	assert.False(t, c.Copy(ctx, "x"))
	w.AssertNotCalled(t, "WriteAll", mock.Anything)
}

func TestCopy_NilBus(t *testing.T) {
	w := new(MockWriter)
	w.On("WriteAll", "x").Return(nil)

	c := &clipboard.Copier{Clipboard: w}
	assert.True(t, c.Copy(context.Background(), "x"))
}
