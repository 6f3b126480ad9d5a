package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [level.json | builtin name]...",
		Short: "Report the problems of level sources without compiling them",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			srcs, err := e.sources(args)
			if err != nil {
				return err
			}

			var failed int
			for _, src := range srcs {
				err := e.check(src, cmd.OutOrStdout())
				if errors.Is(err, ErrCheckFailed) {
					failed++
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", src.name)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d levels", ErrCheckFailed, failed, len(srcs))
			}
			return nil
		},
	}
}
