package cwriter

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen   = "\x1b["
	clearEOL  = escOpen + "K"
	clearLine = "\r" + escOpen + "2K"
)

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Writer is a buffered writer that rewrites a single terminal line. The
// contents of writer will be flushed when Flush is called.
type Writer struct {
	*bytes.Buffer
	out      io.Writer
	fd       int
	terminal bool
	termSize func(int) (int, int, error)
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{
		Buffer: new(bytes.Buffer),
		out:    out,
		termSize: func(_ int) (int, int, error) {
			return -1, -1, ErrNotTTY
		},
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		if IsTerminal(w.fd) {
			w.terminal = true
			w.termSize = GetSize
		}
	}
	return w
}

// Flush flushes the underlying buffer. On a terminal the line is rewritten
// in place, otherwise every flush is a new line.
func (w *Writer) Flush() (err error) {
	defer w.Reset()
	if w.terminal {
		if _, err = io.WriteString(w.out, "\r"); err != nil {
			return err
		}
		if _, err = w.WriteTo(w.out); err != nil {
			return err
		}
		_, err = io.WriteString(w.out, clearEOL)
		return err
	}
	if _, err = w.WriteTo(w.out); err != nil {
		return err
	}
	_, err = io.WriteString(w.out, "\n")
	return err
}

// Clear erases current line, no op if not a terminal.
func (w *Writer) Clear() error {
	if !w.terminal {
		return nil
	}
	_, err := io.WriteString(w.out, clearLine)
	return err
}

// GetTermWidth returns width of underlying terminal.
func (w *Writer) GetTermWidth() (int, error) {
	width, _, err := w.termSize(w.fd)
	return width, err
}

// IsTerminal reports whether underlying output is a terminal.
func (w *Writer) IsTerminal() bool {
	return w.terminal
}
