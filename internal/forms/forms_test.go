package forms_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/forms"
	"github.com/stretchr/testify/assert"
)

func TestFilterSpecialChars(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello, World!", "hello__world_"},
		{"already_slug", "already_slug"},
		{"Tab\tand  spaces", "tab_and_spaces"},
		{"Café Menu", "caf__menu"},
		{"a😀b", "a__b"},
		{"", ""},
		{"ÉCOLE Ωmega", "_cole__mega"},
		{"non breaking", "non_breaking"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, forms.FilterSpecialChars(tt.in), "input %q", tt.in)
	}
}

func TestValidateObject(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	assert.True(t, forms.ValidateObject(logger, map[string]any{"a": "x", "b": 1}, []string{"a", "b"}))
	assert.False(t, forms.ValidateObject(logger, map[string]any{"a": "", "b": 1}, []string{"a", "b"}))
	assert.Contains(t, buf.String(), config.MsgValueEmpty)

	tests := []struct {
		name string
		obj  map[string]any
		msg  string
	}{
		{"missing key", map[string]any{"a": "x"}, config.MsgKeyMissing},
		{"blank string", map[string]any{"a": "x", "b": " \t"}, config.MsgValueEmpty},
		{"NaN", map[string]any{"a": "x", "b": math.NaN()}, config.MsgValueNaN},
		{"empty slice", map[string]any{"a": "x", "b": []string{}}, config.MsgValueEmptyList},
		{"empty array", map[string]any{"a": "x", "b": [0]int{}}, config.MsgValueEmptyList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			assert.False(t, forms.ValidateObject(logger, tt.obj, []string{"a", "b"}))
			assert.Contains(t, buf.String(), tt.msg)
			assert.Contains(t, buf.String(), `"key":"b"`)
		})
	}

	// Other values are accepted as is.
	assert.True(t, forms.ValidateObject(nil, map[string]any{"a": nil, "b": false, "c": []int{0}}, []string{"a", "b", "c"}))
}

func TestValidateObject_StopsAtFirstViolation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	assert.False(t, forms.ValidateObject(logger, map[string]any{"b": ""}, []string{"a", "b"}))
	assert.Contains(t, buf.String(), config.MsgKeyMissing)
	assert.NotContains(t, buf.String(), config.MsgValueEmpty)
}

func TestCredentials_Rules(t *testing.T) {
	c := forms.NewCredentials()
	assert.True(t, c.Password.Hidden)

	c.Email.Value = ""
	assert.Equal(t, []string{config.TKeyEmailRequired, config.TKeyEmailInvalid}, c.Email.Check())

	for _, good := range []string{"jane@example.com", "j.doe+x@mail.example.org", `"odd name"@example.com`, "a@[10.0.0.1]"} {
		c.Email.Value = good
		assert.True(t, c.Email.Valid(), "email %q", good)
	}
	for _, bad := range []string{"jane", "jane@", "jane@example", "ja ne@example.com"} {
		c.Email.Value = bad
		assert.Equal(t, []string{config.TKeyEmailInvalid}, c.Email.Check(), "email %q", bad)
	}

	c.Password.Value = "abc"
	assert.Equal(t, []string{
		config.TKeyPasswordLength,
		config.TKeyPasswordDigit,
		config.TKeyPasswordUpper,
		config.TKeyPasswordSpecial,
	}, c.Password.Check())

	c.Password.Value = `Secr3t"`
	assert.Empty(t, c.Password.Check())

	c.Password.Value = ""
	assert.NotContains(t, c.Password.Check(), config.TKeyPasswordLength, "length is only checked when set")
	assert.Contains(t, c.Password.Check(), config.TKeyFieldRequired)

	assert.Equal(t, []string{config.TKeyCodeRequired}, c.Code.Check())
	c.Code.Value = "123456"
	assert.True(t, c.Code.Valid())
}
