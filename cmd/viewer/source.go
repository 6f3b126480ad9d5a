package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/milk9111/levelc/compile"
	"github.com/milk9111/levelc/config"
	"github.com/milk9111/levelc/i18n"
	"github.com/milk9111/levelc/levels"
	"github.com/milk9111/levelc/loader"
	"github.com/milk9111/levelc/prefabs"
	"github.com/milk9111/levelc/store"
)

// levelSource opens loaders on one level, from the store when it has been
// compiled there, else by compiling the built-in source in memory.
type levelSource struct {
	cfg      config.Config
	name     string
	registry *prefabs.Registry
}

func (s *levelSource) open(globals loader.Globals) (*loader.Loader, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	r, err := store.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	data, err = io.ReadAll(r)
	r.Close()
	if err != nil {
		return nil, err
	}

	log := s.cfg.Logger()
	opts := []loader.Option{loader.WithGlobals(globals), loader.WithLogger(log)}
	if s.cfg.Locale != "" {
		tr, err := i18n.Default().Translator(s.cfg.Locale)
		if err != nil {
			return nil, err
		}
		opts = append(opts, loader.WithTranslator(tr))
	}
	return loader.New(bytes.NewReader(data), s.name, s.registry, opts...)
}

func (s *levelSource) read() ([]byte, error) {
	st, err := store.Open(s.cfg.Store.Kind, s.cfg.Store.Path)
	if err == nil {
		defer st.Close()
		data, err := st.Get(s.name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	lvl, err := levels.LoadLevelFromFS(s.name)
	if err != nil {
		return nil, fmt.Errorf("level %s is neither stored nor built in: %w", s.name, err)
	}
	var buf bytes.Buffer
	opts := compile.Options{Schema: s.registry, Logger: s.cfg.Logger()}
	if err := compile.CompileLevel(&buf, lvl, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
