package dates

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"ISO date is UTC", "2023-07-24", time.Date(2023, 7, 24, 0, 0, 0, 0, time.UTC)},
		{"ISO date-time is local", "2023-07-24T10:00", time.Date(2023, 7, 24, 10, 0, 0, 0, la)},
		{"Offset honoured", "2023-07-24T10:00:00+02:00", time.Date(2023, 7, 24, 8, 0, 0, 0, time.UTC)},
		{"Zulu with millis", "2023-07-24T10:00:00.000Z", time.Date(2023, 7, 24, 10, 0, 0, 0, time.UTC)},
		{"US short date", "7/24/2023", time.Date(2023, 7, 24, 0, 0, 0, 0, la)},
		{"Lowercase meridiem", "7/24/2023 3:04 pm", time.Date(2023, 7, 24, 15, 4, 0, 0, la)},
		{"Long date", "July 24, 2023", time.Date(2023, 7, 24, 0, 0, 0, 0, la)},
		{"Long form with zone name", "Mon Jul 24 2023 10:00:00 GMT-0700 (Pacific Daylight Time)", time.Date(2023, 7, 24, 17, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.input, la)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	extended := []struct {
		input string
		want  time.Time
	}{
		{"+010213-01-01T00:00:00.000Z", time.Date(10213, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"-000190-06-15T12:30:00.000Z", time.Date(-190, 6, 15, 12, 30, 0, 0, time.UTC)},
		{"+020000-02-29", time.Date(20000, 2, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range extended {
		got, ok := parseDate(tt.input, la)
		require.True(t, ok, "input %q", tt.input)
		assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
	}

	for _, bad := range []string{"", "   ", "not-a-date", "2023-02-30", "+010001-02-29", "-000000-01-01"} {
		_, ok := parseDate(bad, la)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestParseClock(t *testing.T) {
	tod, ok := parseClock("05:00 PM")
	require.True(t, ok)
	assert.Equal(t, 17, tod.Hour())
	assert.Equal(t, 0, tod.Minute())

	tod, ok = parseClock("12:45 a.m.")
	require.True(t, ok)
	assert.Equal(t, 0, tod.Hour())
	assert.Equal(t, 45, tod.Minute())

	_, ok = parseClock("12:75 PM")
	assert.False(t, ok)
}

func TestComponentAndLeadingInt(t *testing.T) {
	n, ok := toComponent(" 42.9 ")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	n, ok = toComponent("")
	assert.True(t, ok, "empty string is zero")
	assert.Equal(t, 0, n)

	_, ok = toComponent("12abc")
	assert.False(t, ok)

	n, ok = leadingInt("  -07px")
	assert.True(t, ok)
	assert.Equal(t, -7, n)

	_, ok = leadingInt("PM")
	assert.False(t, ok)
}

func TestFloorDivAndISO(t *testing.T) {
	assert.Equal(t, int64(-1), floorDiv(-1, 10))
	assert.Equal(t, int64(0), floorDiv(9, 10))
	assert.Equal(t, int64(-2), floorDiv(-11, 10))

	assert.Equal(t, "-000001-06-01T00:00:00.000Z", formatISO(time.Date(-1, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "+010000-01-01T00:00:00.000Z", formatISO(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)))
}
