// Package locale loads the embedded message catalogs and resolves the
// active language.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog translates message keys for one language.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	languages []string
	lang      string
	logger    *slog.Logger
}

// New loads every embedded "active.<lang>.json" file and selects the
// closest match to lang. Files that fail to load are logged and skipped.
func New(lang string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(config.LogKeyComponent, config.CompI18n)

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			logger.Debug(config.MsgLocaleSkip, config.LogKeyFile, name)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if code == "" {
			logger.Warn(config.MsgLocaleBadName, config.LogKeyFile, name)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			logger.Error(config.ErrLocaleLoad,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		detected = append(detected, code)
		logger.Debug(config.MsgLocaleLoaded,
			config.LogKeyLang, code,
			config.LogKeyFile, name,
		)
	}

	c := &Catalog{
		bundle:    bundle,
		languages: detected,
		logger:    logger,
	}
	c.SetLanguage(lang)
	return c, nil
}

// SetLanguage switches the catalog to the loaded language closest to lang.
// Unknown or empty values select the default language.
func (c *Catalog) SetLanguage(lang string) {
	tags := make([]language.Tag, 0, len(c.languages)+1)
	tags = append(tags, language.Make(config.DefaultLanguage))
	for _, code := range c.languages {
		tags = append(tags, language.Make(code))
	}

	matched := config.DefaultLanguage
	if lang != "" {
		if _, idx, confidence := language.NewMatcher(tags).Match(language.Make(lang)); confidence != language.No {
			base, _ := tags[idx].Base()
			matched = base.String()
		}
	}

	c.lang = matched
	c.localizer = i18n.NewLocalizer(c.bundle, matched)
}

// Language returns the selected language code.
func (c *Catalog) Language() string {
	if c == nil {
		return config.DefaultLanguage
	}
	return c.lang
}

// Languages returns the codes of the loaded catalogs.
func (c *Catalog) Languages() []string {
	if c == nil {
		return nil
	}
	return c.languages
}

// Msg translates key, returning the key itself when no translation exists.
func (c *Catalog) Msg(key string) string {
	if c == nil || c.localizer == nil {
		return key
	}
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		c.logger.Debug(config.MsgTransMissing,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// ShortDateLayout returns the Go layout of the short date for the selected
// language.
func (c *Catalog) ShortDateLayout() string {
	layout := c.Msg(config.TKeyFormatDateShort)
	if layout == config.TKeyFormatDateShort {
		return config.LayoutShortDate
	}
	return layout
}
