package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/milk9111/levelc/compile"
	"github.com/milk9111/levelc/level"
	"github.com/milk9111/levelc/prefabs"
	"github.com/milk9111/levelc/store"
)

func newCompileCmd() *cobra.Command {
	var compress bool

	cmd := &cobra.Command{
		Use:   "compile [level.json | builtin name]...",
		Short: "Check and compile levels into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("compress") {
				e.cfg.Compress = compress
			}
			srcs, err := e.sources(args)
			if err != nil {
				return err
			}
			st, err := e.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			var failed int
			for _, src := range srcs {
				if err := e.compileSource(st, src, cmd.OutOrStdout()); err != nil {
					e.log.Errorf("%s: %v", src.name, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d levels failed", failed, len(srcs))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compress, "compress", false, "store levels zstd-compressed")
	return cmd
}

func (e *env) compileSource(st store.Store, src source, out io.Writer) error {
	if err := e.check(src, out); err != nil {
		return err
	}

	var buf bytes.Buffer
	opts := compile.Options{Schema: e.registry, Logger: e.log}
	if err := compile.CompileLevel(&buf, src.level, opts); err != nil {
		return err
	}
	data := buf.Bytes()
	if e.cfg.Compress {
		packed, err := store.Pack(data)
		if err != nil {
			return err
		}
		data = packed
	}
	if err := st.Put(src.name, data); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d items, %d bytes\n", src.name, src.level.ItemsCount(), len(data))
	return nil
}

// check prints the diagnostics of src and runs the class checks of its
// items. Warnings do not fail the level.
func (e *env) check(src source, out io.Writer) error {
	rep := compile.Check(src.level, e.registry)
	for _, d := range rep.Diagnostics {
		fmt.Fprintf(out, "%s: %s\n", src.name, d)
	}

	failed := !rep.OK()
	for li, l := range src.level.Layers {
		for i, it := range l.Items {
			_, err := e.registry.Build(it)
			if !errors.Is(err, prefabs.ErrCheckFailed) {
				continue
			}
			fmt.Fprintf(out, "%s: layer %d: %s: %v\n", src.name, li, itemName(it, i), err)
			failed = true
		}
	}
	if failed {
		return ErrCheckFailed
	}
	return nil
}

func itemName(it *level.Item, i int) string {
	if it.ID != "" {
		return it.ID
	}
	return fmt.Sprintf("#%d", i)
}
