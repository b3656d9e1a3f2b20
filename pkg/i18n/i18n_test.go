package i18n

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEmbedded(t *testing.T) {
	t.Helper()
	sub, err := fs.Sub(EmbeddedLocales, "locales")
	require.NoError(t, err)
	require.NoError(t, Load(sub))
}

func TestLocalesHaveSameKeys(t *testing.T) {
	loadEmbedded(t)
	require.NotZero(t, KeyCount("tr"))
	assert.Equal(t, KeyCount("tr"), KeyCount("en"))
	for key := range translations["tr"] {
		_, ok := translations["en"][key]
		assert.True(t, ok, "missing en key %s", key)
	}
}

func TestTranslate(t *testing.T) {
	loadEmbedded(t)

	tr := NewLocalizer("tr")
	assert.Equal(t, "Erişim Reddedildi", tr.T("admin.unauthenticated.title"))
	assert.Equal(t, "Yetkisiz Erişim", tr.T("admin.unauthorized.title"))

	en := NewLocalizer("en")
	assert.Equal(t, "Unauthorized Access", en.T("admin.unauthorized.title"))

	assert.Equal(t, "tr", NewLocalizer("de").Lang())
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))

	got := tr.TWithParams("restaurants.resultRange", map[string]string{"start": "1", "end": "5", "total": "5"})
	assert.Equal(t, "1-5 / 5 sonuç", got)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "tr", DetectLanguage(""))
	assert.Equal(t, "en", DetectLanguage("en-US,en;q=0.9"))
	assert.Equal(t, "tr", DetectLanguage("tr-TR,tr;q=0.9,en;q=0.5"))
	assert.Equal(t, "tr", DetectLanguage("ja"))
	assert.Equal(t, "tr", DetectLanguage(";;;"))
}
