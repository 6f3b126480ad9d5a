package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/levelc/store"
)

func newStoreCmd() *cobra.Command {
	storeLsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List stored levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(st store.Store) error {
				names, err := st.List()
				if err != nil {
					return err
				}
				for _, name := range names {
					data, err := st.Get(name)
					if err != nil {
						return err
					}
					kind := "raw"
					if store.IsCompressed(data) {
						kind = "zstd"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", name, len(data), kind)
				}
				return nil
			})
		},
	}

	storeRmCmd := &cobra.Command{
		Use:   "rm <name>...",
		Short: "Remove stored levels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(st store.Store) error {
				for _, name := range args {
					if err := st.Delete(name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	var output string
	storeGetCmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Write a stored level, uncompressed, to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(st store.Store) error {
				data, err := st.Get(args[0])
				if err != nil {
					return err
				}
				data, err = store.Unpack(data)
				if err != nil {
					return err
				}
				if output == "" {
					output = args[0] + store.Ext
				}
				return os.WriteFile(output, data, 0644)
			})
		},
	}
	storeGetCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <name>.cl)")

	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Manage compiled levels",
	}
	storeCmd.AddCommand(storeLsCmd, storeRmCmd, storeGetCmd)
	return storeCmd
}

func withStore(fn func(store.Store) error) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}
