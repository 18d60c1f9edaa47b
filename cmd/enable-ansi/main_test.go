package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enable-ansi-support/console"
	"enable-ansi-support/internal/vt"
)

func testApp(enableErr error) (*app, *int) {
	calls := 0
	return &app{
		enable: func() error {
			calls++
			return enableErr
		},
		isTerminal: func(int) bool { return false },
	}, &calls
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func withNoColor(t *testing.T, v bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = v
	t.Cleanup(func() { color.NoColor = prev })
}

func TestEnable(t *testing.T) {
	denied := &vt.Error{Op: "CreateFile", Code: 5}

	tests := []struct {
		name    string
		err     error
		args    []string
		env     string
		wantErr bool
	}{
		{name: "ok", args: []string{"enable"}},
		{name: "root runs enable", args: []string{}},
		{name: "failure is a warning", err: denied, args: []string{"enable"}},
		{name: "strict", err: denied, args: []string{"enable", "--strict"}, wantErr: true},
		{name: "strict on root", err: denied, args: []string{"--strict"}, wantErr: true},
		{name: "strict from env", err: denied, args: []string{"enable"}, env: "true", wantErr: true},
		{name: "strict success", args: []string{"enable", "--strict"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("ENABLE_ANSI_STRICT", tt.env)
			}
			a, calls := testApp(tt.err)
			_, err := execute(t, a, tt.args...)
			assert.Equal(t, 1, *calls)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "enable ansi support")
			code, ok := console.ErrorCode(err)
			require.True(t, ok)
			assert.Equal(t, uint32(5), code)
		})
	}
}

func TestStatus(t *testing.T) {
	a, _ := testApp(nil)
	out, err := execute(t, a, "status")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "platform  "))
	assert.Equal(t, "stdout    not a terminal", lines[2])
	assert.Equal(t, "vt        ok", lines[4])
}

func TestStatusReportsCode(t *testing.T) {
	a, _ := testApp(&vt.Error{Op: "GetConsoleMode", Code: 6})
	a.isTerminal = func(int) bool { return true }
	out, err := execute(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "stdout    terminal\n")
	assert.Contains(t, out, "vt        error 6 (GetConsoleMode:")
}

func TestDemo(t *testing.T) {
	withNoColor(t, true)
	a, calls := testApp(nil)
	out, err := execute(t, a, "demo")
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.NotContains(t, out, "\x1b[")
	for _, s := range swatches {
		assert.Contains(t, out, s.name)
	}
}

func TestDemoForceColorAndClear(t *testing.T) {
	withNoColor(t, true)
	a, _ := testApp(nil)
	out, err := execute(t, a, "demo", "--force-color", "--clear")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x1b[H\x1b[0J"))
	assert.Contains(t, out, "\x1b[31m")
	assert.Contains(t, out, "\x1b[91m")
}

func TestDemoStrictFailure(t *testing.T) {
	a, _ := testApp(&vt.Error{Op: "SetConsoleMode", Code: 87})
	out, err := execute(t, a, "demo", "--strict")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRenderSwatchesAligned(t *testing.T) {
	withNoColor(t, true)
	lines := strings.Split(strings.TrimRight(renderSwatches(), "\n"), "\n")
	require.Len(t, lines, len(swatches))
	for i, s := range swatches {
		assert.True(t, strings.HasPrefix(lines[i], s.name), lines[i])
		assert.Equal(t, "  ██ sample", lines[i][len("magenta"):len("magenta")+len("  ██ sample")])
	}
}

func TestPanelDraw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPanel(&buf, false).Draw("hello\n"))
	assert.Equal(t, "hello\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPanel(&buf, true).Draw("x"))
	assert.Equal(t, "\x1b[H\x1b[0Jx", buf.String())
}
