package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatorMatchesLocale(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"de", "fr", "pt-BR"}, c.Locales())

	tests := []struct {
		locale string
		in     string
		want   string
	}{
		{"fr", "Press any key", "Appuyez sur une touche"},
		{"fr-CA", "Castle gate", "Porte du château"},
		{"de-AT", "The castle awaits", "Die Burg wartet"},
		{"pt-BR", "Press any key", "Pressione qualquer tecla"},
		{"pt-BR", "Castle gate", "Castle gate"},
		{"ja", "Press any key", "Press any key"},
	}
	for _, tt := range tests {
		tr, err := c.Translator(tt.locale)
		require.NoError(t, err, tt.locale)
		assert.Equal(t, tt.want, tr.Translate(tt.in), tt.locale)
	}
}

func TestTranslatorBadLocale(t *testing.T) {
	_, err := Default().Translator("not a locale!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadLocale))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("fr: [unbalanced"))
	require.Error(t, err)

	_, err = Parse([]byte("\"!!\":\n  a: b\n"))
	assert.ErrorIs(t, err, ErrBadLocale)
}

func TestEmptyCatalog(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	tr, err := c.Translator("en")
	require.NoError(t, err)
	assert.Equal(t, "hello", tr.Translate("hello"))
}
