// Package forms holds the input helpers used by the scheduling forms:
// slug filtering, required-key checks and credential rules.
package forms

import (
	"log/slog"
	"math"
	"reflect"
	"strings"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// FilterSpecialChars replaces every character other than ASCII letters,
// digits and whitespace with "_", then every run of whitespace with a
// single "_", then lower-cases the result. Characters outside the Basic
// Multilingual Plane count as two characters.
func FilterSpecialChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case isWordChar(r) || isSpace(r):
			b.WriteRune(r)
		case r > 0xffff:
			b.WriteString("__")
		default:
			b.WriteByte('_')
		}
	}

	replaced := b.String()
	b.Reset()
	inSpace := false
	for _, r := range replaced {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return lower.String(b.String())
}

func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// ValidateObject reports whether every key in required is present in obj
// with a usable value: strings must not be blank, floats must not be NaN
// and slices or arrays must not be empty. It stops at the first violation
// and logs it.
func ValidateObject(logger *slog.Logger, obj map[string]any, required []string) bool {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(config.LogKeyComponent, config.CompForms)

	for _, key := range required {
		value, ok := obj[key]
		if !ok {
			logger.Error(config.MsgKeyMissing, config.LogKeyKey, key)
			return false
		}

		switch v := value.(type) {
		case string:
			if Validate.Var(v, notBlankTag) != nil {
				logger.Error(config.MsgValueEmpty, config.LogKeyKey, key)
				return false
			}
		case float64:
			if math.IsNaN(v) {
				logger.Error(config.MsgValueNaN, config.LogKeyKey, key)
				return false
			}
		case float32:
			if math.IsNaN(float64(v)) {
				logger.Error(config.MsgValueNaN, config.LogKeyKey, key)
				return false
			}
		default:
			rv := reflect.ValueOf(value)
			if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == 0 {
				logger.Error(config.MsgValueEmptyList, config.LogKeyKey, key)
				return false
			}
		}
	}
	return true
}
