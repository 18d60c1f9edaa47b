package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ENABLE_ANSI"

type Config struct {
	// Strict makes a failed enable an error exit instead of a warning.
	Strict bool

	// Demo only.
	Clear      bool
	ForceColor bool
}

// loadConfig reads cmd's flags, letting ENABLE_ANSI_* environment variables
// fill in whatever was not set on the command line.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}
	return Config{
		Strict:     v.GetBool("strict"),
		Clear:      v.GetBool("clear"),
		ForceColor: v.GetBool("force-color"),
	}, nil
}
