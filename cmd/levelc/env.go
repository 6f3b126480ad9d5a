package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/levelc/config"
	"github.com/milk9111/levelc/i18n"
	"github.com/milk9111/levelc/level"
	"github.com/milk9111/levelc/levels"
	"github.com/milk9111/levelc/loader"
	"github.com/milk9111/levelc/logging"
	"github.com/milk9111/levelc/prefabs"
	"github.com/milk9111/levelc/store"
)

var ErrCheckFailed = errors.New("level check failed")

// env is what every command needs: the configuration, a logger and the
// class registry.
type env struct {
	cfg      config.Config
	log      *logging.Logger
	registry *prefabs.Registry
}

func newEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, log: cfg.Logger()}
	logging.SetDefault(e.log)
	if err := e.reloadClasses(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *env) reloadClasses() error {
	var (
		reg *prefabs.Registry
		err error
	)
	if e.cfg.Classes != "" {
		reg, err = prefabs.LoadRegistryFS(os.DirFS(e.cfg.Classes))
	} else {
		reg, err = prefabs.Default()
	}
	if err != nil {
		return err
	}
	e.registry = reg
	e.log.Debugf("classes: %d loaded", len(reg.Classes()))
	return nil
}

func (e *env) openStore() (store.Store, error) {
	return store.Open(e.cfg.Store.Kind, e.cfg.Store.Path)
}

func (e *env) translator() (loader.Translator, error) {
	if e.cfg.Locale == "" {
		return nil, nil
	}
	catalogs := i18n.Default()
	if e.cfg.Catalog != "" {
		c, err := i18n.Load(e.cfg.Catalog)
		if err != nil {
			return nil, err
		}
		catalogs = c
	}
	tr, err := catalogs.Translator(e.cfg.Locale)
	if err != nil {
		return nil, err
	}
	e.log.Debugf("strings translated to %s", tr.Tag)
	return tr, nil
}

type source struct {
	name  string
	level *level.Level
}

// sources resolves the command arguments: JSON files, or names of built-in
// levels. Without arguments every JSON file of the source directory is
// used, or every built-in level when that directory does not exist.
func (e *env) sources(args []string) ([]source, error) {
	if len(args) == 0 {
		files, err := filepath.Glob(filepath.Join(e.cfg.Sources, "*.json"))
		if err != nil {
			return nil, err
		}
		if _, statErr := os.Stat(e.cfg.Sources); errors.Is(statErr, fs.ErrNotExist) {
			args = levels.Names()
		} else {
			args = files
		}
		sort.Strings(args)
	}

	out := make([]source, 0, len(args))
	for _, arg := range args {
		var (
			lvl *level.Level
			err error
		)
		if strings.HasSuffix(arg, ".json") {
			lvl, err = level.Load(arg)
		} else {
			lvl, err = levels.LoadLevelFromFS(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		name := lvl.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(arg), ".json")
		}
		out = append(out, source{name: name, level: lvl})
	}
	return out, nil
}
