package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"enable-ansi-support/console"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report terminal attachment and the result of enabling VT processing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.writeStatus(cmd.OutOrStdout())
			return nil
		},
	}
}

func (a *app) writeStatus(w io.Writer) {
	rows := [][2]string{
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
		{"opt-in", yesNo(console.NeedsEnabling())},
		{"stdout", a.terminalState(int(os.Stdout.Fd()))},
		{"stderr", a.terminalState(int(os.Stderr.Fd()))},
		{"vt", vtState(a.enable())},
	}
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(r[0], width), r[1])
	}
}

func (a *app) terminalState(fd int) string {
	if a.isTerminal(fd) {
		return "terminal"
	}
	return "not a terminal"
}

func vtState(err error) string {
	if err == nil {
		return "ok"
	}
	if code, ok := console.ErrorCode(err); ok {
		return fmt.Sprintf("error %d (%v)", code, err)
	}
	return "error (" + err.Error() + ")"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
