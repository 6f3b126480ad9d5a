package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

func main() {
	if err := execRootCmd(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "levelc",
		Short:         "Compile, check and load game levels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (default $LEVELC_CONFIG or levelc.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(
		newCompileCmd(),
		newCheckCmd(),
		newDumpCmd(),
		newLoadCmd(),
		newWatchCmd(),
		newStoreCmd(),
	)
	return rootCmd
}

func execRootCmd(args []string, out io.Writer) error {
	configPath, logLevel = "", ""

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "levelc:", err)
	}
	return err
}
