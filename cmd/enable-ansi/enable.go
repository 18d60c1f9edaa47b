package main

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"enable-ansi-support/console"
)

func newEnableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Switch on VT processing for the attached console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return a.enableConsole(cfg.Strict)
		},
	}
	cmd.Flags().Bool("strict", false, "exit with an error when the console mode cannot be changed")
	return cmd
}

// enableConsole runs the enable hook. Failures are only logged unless strict is set:
// output still works without ANSI, it just is not colored.
func (a *app) enableConsole(strict bool) error {
	err := a.enable()
	if err == nil {
		log.Debug().Msg("ansi escape sequences enabled")
		return nil
	}
	if strict {
		return errors.Wrap(err, "enable ansi support")
	}
	ev := log.Warn().Err(err)
	if code, ok := console.ErrorCode(err); ok {
		ev = ev.Uint32("code", code)
	}
	ev.Msg("could not enable ansi escape sequences, continuing without them")
	return nil
}
