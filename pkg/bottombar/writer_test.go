// ABOUTME: Tests for the io.Writer adapter feeding lines above the region
// ABOUTME: Covers newline trimming, stdlib log integration, and error passthrough

package bottombar

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestWriter_TrimsOneTrailingNewline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	bar, _ := New(&buf, 2)

	n, err := bar.Writer().Write([]byte("hello\n"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != 6 {
		t.Errorf("Write returned n=%d; want 6 (full input consumed)", n)
	}

	// One display line only: the trailing newline must not double-insert.
	if !strings.Contains(buf.String(), "\033[1Lhello\033[") {
		t.Errorf("payload = %q; want single-line insert of %q", buf.String(), "hello")
	}
}

func TestWriter_KeepsInteriorNewlines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	bar, _ := New(&buf, 2)

	if _, err := bar.Writer().Write([]byte("a\nb\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[2La\nb\033[") {
		t.Errorf("payload = %q; want two-line insert of %q", buf.String(), "a\nb")
	}
}

func TestWriter_FeedsStdlibLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	bar, _ := New(&buf, 3)

	logger := log.New(bar.Writer(), "", 0)
	logger.Print("plain logger line")

	if !strings.Contains(buf.String(), "plain logger line") {
		t.Errorf("payload = %q; want logger output routed above the region", buf.String())
	}
}

func TestWriter_PropagatesPrintErrors(t *testing.T) {
	t.Parallel()

	werr := errors.New("broken pipe")
	bar, _ := New(errWriter{err: werr}, 2)

	if _, err := bar.Writer().Write([]byte("x")); !errors.Is(err, werr) {
		t.Errorf("Write error = %v; want wrapped %v", err, werr)
	}
}

func TestWriter_QueueBacked(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	bar, _ := New(&buf, 2)
	q := NewQueue(bar)
	defer q.Close()

	if _, err := q.Writer().Write([]byte("via queue\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "via queue") {
		t.Errorf("payload = %q; want queued line above the region", buf.String())
	}
}
