package locale_test

import (
	"testing"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsEmbeddedCatalogs(t *testing.T) {
	c, err := locale.New("", nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, config.SupportedLanguages, c.Languages())
	assert.Equal(t, config.DefaultLanguage, c.Language())
	assert.Equal(t, "Copied to clipboard!", c.Msg(config.TKeyCopied))
	assert.Equal(t, config.LayoutShortDate, c.ShortDateLayout())
}

func TestSetLanguage_Matching(t *testing.T) {
	c, err := locale.New("fr-CA", nil)
	require.NoError(t, err)
	assert.Equal(t, "fr", c.Language(), "regional variants match the base catalog")
	assert.Equal(t, "02/01/2006", c.ShortDateLayout())
	assert.Equal(t, "ERREUR", c.Msg(config.TKeyStatusError))

	c.SetLanguage("de")
	assert.Equal(t, config.DefaultLanguage, c.Language(), "unsupported languages fall back")
	assert.Equal(t, "ERROR", c.Msg(config.TKeyStatusError))
}

func TestMsg_MissingKeyReturnsKey(t *testing.T) {
	c, err := locale.New("en", nil)
	require.NoError(t, err)
	assert.Equal(t, "no_such_key", c.Msg("no_such_key"))

	var nilCatalog *locale.Catalog
	assert.Equal(t, config.TKeyCopied, nilCatalog.Msg(config.TKeyCopied))
	assert.Equal(t, config.LayoutShortDate, nilCatalog.ShortDateLayout())
}
