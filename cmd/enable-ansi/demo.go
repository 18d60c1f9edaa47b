package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

type swatch struct {
	name string
	attr color.Attribute
}

var swatches = []swatch{
	{"black", color.FgBlack},
	{"red", color.FgRed},
	{"green", color.FgGreen},
	{"yellow", color.FgYellow},
	{"blue", color.FgBlue},
	{"magenta", color.FgMagenta},
	{"cyan", color.FgCyan},
	{"white", color.FgWhite},
}

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Enable VT processing and print a color sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := a.enableConsole(cfg.Strict); err != nil {
				return err
			}
			if cfg.ForceColor {
				color.NoColor = false
			}
			return NewPanel(cmd.OutOrStdout(), cfg.Clear).Draw(renderSwatches())
		},
	}
	cmd.Flags().Bool("strict", false, "exit with an error when the console mode cannot be changed")
	cmd.Flags().Bool("clear", false, "clear the screen before drawing")
	cmd.Flags().Bool("force-color", false, "emit colors even when stdout is not a terminal")
	return cmd
}

// renderSwatches lays out one row per color: the name, the normal sample and the
// bright sample, aligned on display width.
func renderSwatches() string {
	const sample = "██ sample"

	width := 0
	for _, s := range swatches {
		width = max(width, runewidth.StringWidth(s.name))
	}

	var b strings.Builder
	for _, s := range swatches {
		b.WriteString(runewidth.FillRight(s.name, width))
		b.WriteString("  ")
		b.WriteString(color.New(s.attr).Sprint(sample))
		b.WriteString("  ")
		b.WriteString(color.New(s.attr + 60).Sprint(sample)) // hi-intensity
		b.WriteString("  ")
		b.WriteString(color.New(s.attr, color.Bold, color.Underline).Sprint(s.name))
		b.WriteString("\n")
	}
	return b.String()
}
