package main

import (
	"bufio"
	"fmt"
	"io"
)

// Panel writes whole blocks through one buffer so a frame reaches the console in
// a single write.
type Panel struct {
	out   *bufio.Writer
	clear bool
}

// NewPanel buffers writes to w. With clear set, every Draw starts from the
// top-left corner of an emptied screen.
func NewPanel(w io.Writer, clear bool) *Panel {
	return &Panel{out: bufio.NewWriterSize(w, 64<<10), clear: clear}
}

// Draw writes block and flushes.
func (p *Panel) Draw(block string) error {
	if p.clear {
		fmt.Fprint(p.out, "\x1b[H")  // cursor home
		fmt.Fprint(p.out, "\x1b[0J") // clear from cursor to end of screen
	}
	fmt.Fprint(p.out, block)
	return p.out.Flush()
}
