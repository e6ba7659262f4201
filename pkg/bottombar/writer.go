// ABOUTME: io.Writer adapter feeding arbitrary line output above the region
// ABOUTME: Each Write becomes one Print; a single trailing newline is trimmed

package bottombar

import (
	"io"
	"strings"
)

// printerWriter adapts a Printer to io.Writer so unstructured producers
// (log.SetOutput, subprocess stdout) can scroll above the region.
type printerWriter struct {
	p Printer
}

// Writer returns an io.Writer that prints every Write above the region.
// One trailing newline per Write is trimmed, since Print controls line
// termination itself; interior newlines pass through and insert multiple
// lines, as Print does.
func (b *Bar) Writer() io.Writer {
	return &printerWriter{p: b}
}

// Writer returns an io.Writer backed by the queue, safe for use from any
// goroutine.
func (q *Queue) Writer() io.Writer {
	return &printerWriter{p: q}
}

func (w *printerWriter) Write(p []byte) (int, error) {
	if err := w.p.Print(strings.TrimSuffix(string(p), "\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}
