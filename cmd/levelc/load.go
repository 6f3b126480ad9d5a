package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/milk9111/levelc/loader"
	"github.com/milk9111/levelc/preload"
	"github.com/milk9111/levelc/store"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <stored name>...",
		Short: "Load stored levels frame by frame, as the game does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			tr, err := e.translator()
			if err != nil {
				return err
			}
			for _, name := range args {
				if err := e.load(name, tr, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			return nil
		},
	}
}

func (e *env) load(name string, tr loader.Translator, out io.Writer) error {
	data, err := e.readStored(name)
	if err != nil {
		return err
	}
	r, err := store.NewReader(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer r.Close()

	resources := &loader.ResourceSet{}
	opts := []loader.Option{loader.WithGlobals(resources), loader.WithLogger(e.log)}
	if tr != nil {
		opts = append(opts, loader.WithTranslator(tr))
	}
	l, err := loader.New(r, name, e.registry, opts...)
	if err != nil {
		return err
	}

	job := preload.NewJob(l, e.cfg.Preload.Ratio)
	frames := 0
	for {
		frames++
		done, err := job.Progress(e.cfg.Preload.Frame)
		if err != nil {
			return err
		}
		if done {
			break
		}
		e.log.Debugf("%s: frame %d, %.0f%%", name, frames, job.Fraction()*100)
	}

	lvl := job.Take()
	fmt.Fprintf(out, "%s: %d items in %d layers, %d frames\n", lvl.Name, job.ItemsCount(), len(lvl.Layers), frames)
	for _, kind := range []loader.ResourceKind{loader.Image, loader.AnimationFile, loader.Sound, loader.FontFile, loader.Music} {
		for _, p := range resources.Paths(kind) {
			fmt.Fprintf(out, "  %s %s\n", kind, p)
		}
	}
	return nil
}
