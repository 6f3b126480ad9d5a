package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/milk9111/levelc/prefabs"
	"github.com/milk9111/levelc/store"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Recompile levels whenever a source or class file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return e.watch(ctx, cmd)
		},
	}
}

func (e *env) watch(ctx context.Context, cmd *cobra.Command) error {
	dirs := []string{e.cfg.Sources}
	if e.cfg.Classes != "" {
		dirs = append(dirs, e.cfg.Classes, filepath.Join(e.cfg.Classes, "scripts"))
	}
	var watched []string
	for _, d := range dirs {
		if _, err := os.Stat(d); err == nil {
			watched = append(watched, d)
		}
	}

	w, err := prefabs.NewWatcher(watched...)
	if err != nil {
		return err
	}
	defer w.Close()

	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	seen := stamps{}
	if files, err := filepath.Glob(filepath.Join(e.cfg.Sources, "*.json")); err == nil {
		for _, f := range files {
			seen.changed(f)
		}
	}

	out := cmd.OutOrStdout()
	e.compileAll(st, nil, out)
	e.log.Infof("watching %v", watched)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			e.log.Warnf("watch: %v", err)
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !seen.changed(path) {
				e.log.Debugf("%s unchanged, skipped", path)
				continue
			}
			if prefabs.IsClassFile(path) {
				e.log.Infof("%s changed, reloading classes", path)
				if err := e.reloadClasses(); err != nil {
					e.log.Errorf("classes: %v", err)
					continue
				}
				e.compileAll(st, nil, out)
				continue
			}
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			e.log.Infof("%s changed", path)
			e.compileAll(st, []string{path}, out)
		}
	}
}

// compileAll compiles the given sources, logging failures instead of
// returning them.
func (e *env) compileAll(st store.Store, args []string, out io.Writer) {
	srcs, err := e.sources(args)
	if err != nil {
		e.log.Errorf("%v", err)
		return
	}
	for _, src := range srcs {
		if err := e.compileSource(st, src, out); err != nil {
			e.log.Errorf("%s: %v", src.name, err)
		}
	}
}

// stamps holds the last modification time seen for each watched file.
type stamps map[string]time.Time

// changed reports whether path was modified since the last call and records
// its time. A file without a time, removed ones included, always counts as
// changed.
func (s stamps) changed(path string) bool {
	t, ok := prefabs.ModTime(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if !ok {
		delete(s, path)
		return true
	}
	if last, seen := s[path]; seen && last.Equal(t) {
		return false
	}
	s[path] = t
	return true
}
