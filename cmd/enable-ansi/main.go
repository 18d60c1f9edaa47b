package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"enable-ansi-support/console"
)

// app holds the process-facing hooks the commands use, so tests can swap them.
type app struct {
	enable     func() error
	isTerminal func(fd int) bool

	verbosity int
}

func newApp() *app {
	return &app{
		enable:     console.EnableANSISupport,
		isTerminal: term.IsTerminal,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "enable-ansi",
		Short:         "Enable ANSI escape sequences in the current console",
		SilenceErrors: true, // main prints the error
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if a.verbosity == 1 {
				level = zerolog.DebugLevel
			} else if a.verbosity >= 2 {
				level = zerolog.TraceLevel
			}
			log.Logger = log.Logger.Level(level)
		},
	}
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "verbose output")

	enable := newEnableCmd(a)
	root.AddCommand(enable, newStatusCmd(a), newDemoCmd(a))

	// Running without a subcommand behaves like "enable".
	root.Flags().AddFlagSet(enable.Flags())
	root.RunE = enable.RunE
	return root
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
