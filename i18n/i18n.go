// Package i18n translates the strings of loaded levels. Catalogs are YAML
// maps from a BCP 47 locale to source string to translation.
package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/levelc/loader"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrBadLocale = errors.New("i18n: invalid locale")

// Catalogs holds the translations of every known locale.
type Catalogs struct {
	tags    []language.Tag
	tables  []map[string]string
	matcher language.Matcher
}

// Parse reads a YAML catalog file.
func Parse(data []byte) (*Catalogs, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("i18n: unmarshal catalog: %w", err)
	}

	locales := make([]string, 0, len(raw))
	for locale := range raw {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	c := &Catalogs{}
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadLocale, locale, err)
		}
		c.tags = append(c.tags, tag)
		c.tables = append(c.tables, raw[locale])
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Load reads a catalog file from disk.
func Load(path string) (*Catalogs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("i18n: load %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the catalog built into the binary.
func Default() *Catalogs {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Locales returns the catalog locales, sorted.
func (c *Catalogs) Locales() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Translator returns the translator of the catalog locale closest to
// locale. When nothing matches, strings are returned unchanged.
func (c *Catalogs) Translator(locale string) (*Translator, error) {
	want, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadLocale, locale, err)
	}
	if len(c.tags) == 0 {
		return &Translator{Tag: want}, nil
	}
	_, idx, conf := c.matcher.Match(want)
	if conf == language.No {
		return &Translator{Tag: want}, nil
	}
	return &Translator{Tag: c.tags[idx], table: c.tables[idx]}, nil
}

// Translator maps source strings to one locale.
type Translator struct {
	Tag   language.Tag
	table map[string]string
}

var _ loader.Translator = (*Translator)(nil)

func (t *Translator) Translate(s string) string {
	if v, ok := t.table[s]; ok {
		return v
	}
	return s
}
