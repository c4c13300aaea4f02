package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// cursor home, then erase the whole screen
	clearSeq = "\x1b[H\x1b[2J"
)

// TerminalRenderer draws snapshots as text
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display renders the snapshot, one line per row
func (r *TerminalRenderer) Display(s Snapshot) error {
	w := bufio.NewWriter(r.out)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			if s.Alive(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, clearSeq); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
