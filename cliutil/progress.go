package cliutil

import (
	"fmt"
	"io"
)

// Progress writes carriage-return-padded status lines to w, each
// overwriting the previous one, for long-running reduce/search passes
// run against stdin-sized networks large enough that silence would
// look like a hang.
type Progress struct {
	w       io.Writer
	lastLen int
}

// NewProgress wraps w for carriage-return progress reporting.
func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

// Report overwrites the current line with msg, padding with spaces to
// erase any leftover characters from a longer previous line.
func (p *Progress) Report(msg string) {
	pad := p.lastLen - len(msg)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(p.w, "\r%s%*s", msg, pad, "")
	p.lastLen = len(msg)
}

// Done terminates the progress line with a newline so subsequent
// output starts fresh.
func (p *Progress) Done() {
	fmt.Fprintln(p.w)
	p.lastLen = 0
}
