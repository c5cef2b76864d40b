package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// MockClipboard records clipboard writes.
type MockClipboard struct {
	mock.Mock
}

func (m *MockClipboard) WriteAll(text string) error {
	return m.Called(text).Error(0)
}

var fixedNow = time.Date(2023, 7, 24, 12, 0, 0, 0, time.UTC)

// execute runs the command tree in UTC with no settings file.
func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	a.clock = MockClock{CurrentTime: fixedNow}

	root := a.rootCommand()
	base := []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--zone", "UTC"}
	root.SetArgs(append(base, args...))
	err := root.ExecuteContext(context.Background())
	return a.stdout.(*bytes.Buffer).String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return execute(t, newApp(&stdout, &stderr), args...)
}

func TestConversionCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"military", []string{"military", "1400"}, "2:00 PM"},
		{"military in zone", []string{"military-tz", "1500", "Asia/Tokyo"}, "12:00 AM"},
		{"from days", []string{"from-days", "8605"}, "7/24/2023"},
		{"from days in French", []string{"--lang", "fr", "from-days", "8605"}, "24/07/2023"},
		{"days since", []string{"days-since", "2000-01-04"}, "3"},
		{"iso", []string{"iso", "0"}, "2000-01-01T00:00:00.000Z"},
		{"iso NaN", []string{"iso", "NaN"}, config.NullOutput},
		{"long date", []string{"long-date", "2", config.DefaultZoneUTC}, "Monday, January 3, 2000"},
		{"to utc invalid", []string{"to-utc", "garbage"}, config.InvalidFormat},
		{"day time zero day", []string{"day-time-to-tz", "0", "930"}, config.NullOutput},
		{"day time in zone", []string{"day-time-to-tz", "8605", "930", "America/New_York"}, "2023-07-24T09:30"},
		{"day and time", []string{"day-and-time", "2023-07-24T03:05:42Z"}, `{"day":8605,"time":305}`},
		{"time to number", []string{"time-to-number", "05:00 PM"}, "1700"},
		{"time to number invalid", []string{"time-to-number", "abc"}, config.NullOutput},
		{"utc to local", []string{"utc-to-local", "1300"}, "01:00 PM"},
		{"utc to tz empty", []string{"utc-to-tz", ""}, config.NullOutput},
		{"datetime utc", []string{"datetime-utc", "07/24/2023", "04:30 PM"}, "2023-07-24T16:30"},
		{"datetime utc empty", []string{"datetime-utc", "", "04:30 PM"}, config.NullOutput},
		{"format date", []string{"date", "2023-07-04T10:00"}, "7/4/2023"},
		{"format datetime empty", []string{"datetime", ""}, config.PlaceholderEmpty},
		{"format datetime", []string{"datetime", "2023-07-04T10:00"}, "7/4/23 10:00 AM"},
		{"slug", []string{"slug", "Hello, World!"}, "hello__world_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestConversionCommands_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	root := newApp(&stdout, &stderr).rootCommand()

	tests := map[string]string{
		"datetime":    "M/D/YY hh:mm AM",
		"military-tz": "UTC military time",
	}
	for name, want := range tests {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Contains(t, cmd.Short, want, name)
	}
}

func TestConversionCommands_BadArguments(t *testing.T) {
	_, err := run(t, "military", "noon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrArgument)

	_, err = run(t, "from-days")
	assert.Error(t, err, "missing argument")

	_, err = run(t, "--zone", "Mars/Olympus", "from-days", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrZone)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", config.FieldEmail, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)

	out, err = run(t, "check", config.FieldPassword, "abc")
	require.Error(t, err)
	assert.Equal(t, config.ErrCheckFailed, err.Error())
	assert.Equal(t, []string{
		"Password must be 6-20 characters",
		"Password must contain at least 1 number",
		"Password must contain at least 1 upper case letter",
		"Password must contain at least 1 special character (!@#$%^&*\")",
	}, strings.Split(strings.TrimSpace(out), "\n"))

	out, err = run(t, "--lang", "fr", "check", config.FieldEmail, "nope")
	require.Error(t, err)
	assert.Equal(t, "L'adresse e-mail doit être valide\n", out)

	_, err = run(t, "check", "username", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrUnknownField)
}

func TestCopyCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	clip := &MockClipboard{}
	clip.On("WriteAll", "2023-07-24T09:30").Return(nil).Once()

	a := newApp(&stdout, &stderr)
	a.clipboard = clip
	out, err := execute(t, a, "copy", "2023-07-24T09:30")
	require.NoError(t, err)
	assert.Equal(t, "Copied to clipboard!\n", out)
	clip.AssertExpectations(t)
}

func TestCopyCommand_Failure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	clip := &MockClipboard{}
	clip.On("WriteAll", mock.Anything).Return(errors.New("no display"))

	a := newApp(&stdout, &stderr)
	a.clipboard = clip
	out, err := execute(t, a, "copy", "x")
	require.Error(t, err)
	assert.Equal(t, config.ErrCopyFailed, err.Error())
	assert.Empty(t, out, "no notification on failure")
}

func TestICSCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slots.yaml")
	slots := "- day: 8605\n  time: 930\n  zone: America/New_York\n- day: 0\n  time: 1000\n"
	require.NoError(t, os.WriteFile(path, []byte(slots), config.FilePermUserRW))

	out, err := run(t, "ics", "--summary", "Standup", path)
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"), "slots without a day are skipped")
	assert.Contains(t, out, "SUMMARY:Standup")
	assert.Contains(t, out, "DTSTART;TZID=America/New_York:20230724T093000")

	_, err = run(t, "ics", filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSlotsRead)
}

func TestServeCommand_RejectsPort(t *testing.T) {
	_, err := run(t, "serve", "--port", "99999", "slots.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrPortRange)
}

func TestServe_StopsOnCancel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.clock = MockClock{CurrentTime: fixedNow}

	ctx, cancel := context.WithCancel(context.Background())
	rendered := make(chan struct{}, 1)
	errChan := make(chan error, 1)
	go func() {
		errChan <- a.serve(ctx, "0", time.Hour, func() ([]byte, error) {
			select {
			case rendered <- struct{}{}:
			default:
			}
			return []byte(config.StubVCalendar), nil
		})
	}()

	select {
	case <-rendered:
	case <-time.After(2 * time.Second):
		t.Fatal("feed was never rendered")
	}
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestSaveSettingsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", config.SettingsFile)

	out, err := run(t, "--config", path, "--lang", "fr", "save-settings")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	saved, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", saved.Language)
	assert.Equal(t, "UTC", saved.LocalZone)

	out, err = run(t, "--config", path, "from-days", "8605")
	require.NoError(t, err)
	assert.Equal(t, "24/07/2023\n", out, "saved language is picked up")
}

func TestRunMain(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, config.ExitCodeSuccess, runMain([]string{"--version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), config.AppName+" version "+config.Version)

	stdout.Reset()
	stderr.Reset()
	code := runMain([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "military", "noon"}, &stdout, &stderr)
	assert.Equal(t, config.ExitCodeError, code)
	assert.Contains(t, stderr.String(), config.ErrArgument)
}
