// ABOUTME: Fixed-height bottom region renderer built on ANSI cursor control
// ABOUTME: Inserts scrolling output above the region; repaints region rows in place

package bottombar

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/bottombar/pkg/bottombar/width"
)

// Sentinel errors for precondition violations. Check with errors.Is.
var (
	// ErrInvalidHeight reports a non-positive region height at construction.
	ErrInvalidHeight = errors.New("bottombar: height must be at least 1")
	// ErrRowOutOfRange reports a SetLine row index outside [0, height).
	ErrRowOutOfRange = errors.New("bottombar: row index outside region")
	// ErrMultilineRow reports SetLine text containing a line break.
	ErrMultilineRow = errors.New("bottombar: region row text must be a single line")
)

const (
	clearLine = "\033[2K" // erase entire current line
	lineStart = "\033[E"  // return cursor to start of line
)

func cursorUp(n int) string    { return fmt.Sprintf("\033[%dA", n) }
func cursorDown(n int) string  { return fmt.Sprintf("\033[%dB", n) }
func insertLines(n int) string { return fmt.Sprintf("\033[%dL", n) }

// Bar maintains a fixed-height region at the bottom of an ANSI terminal.
// Output printed through the Bar scrolls above the region without disturbing
// it, and individual region rows can be rewritten in place.
//
// The Bar tracks no display state beyond its height: every operation is a
// pure translation from intent to a single contiguous escape payload,
// replayed against whatever the terminal currently shows. After every
// operation the cursor rests at the start of the region's bottom row.
//
// Usage follows an open/close pairing:
//
//	bar, err := bottombar.New(os.Stdout, 4)
//	if err != nil { ... }
//	if err := bar.Open(); err != nil { ... }
//	defer bar.Close()
//
// A Bar is not safe for concurrent use; interleaved partial escape
// sequences from two writers corrupt the display. Wrap it in a Queue when
// multiple goroutines need to write.
type Bar struct {
	w        io.Writer
	height   int
	maxWidth int
}

// New creates a Bar of the given height writing to w. The height is the
// number of terminal rows reserved at the bottom and is immutable.
// Returns ErrInvalidHeight when height < 1.
func New(w io.Writer, height int) (*Bar, error) {
	if height < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidHeight, height)
	}
	return &Bar{w: w, height: height}, nil
}

// Height returns the number of rows reserved for the region.
func (b *Bar) Height() int {
	return b.height
}

// SetMaxWidth arms truncation of region rows to cols terminal columns.
// A region row wider than the terminal wraps and breaks the cursor
// arithmetic, so callers drawing on a real terminal should set this to the
// current column count. Zero (the default) disables truncation.
// Must be called before handing the Bar to other goroutines.
func (b *Bar) SetMaxWidth(cols int) {
	b.maxWidth = cols
}

// Open reserves the region by advancing the cursor height rows: height
// blank lines, the last without a trailing newline. Must be called exactly
// once, before any Print or SetLine.
func (b *Bar) Open() error {
	return b.emit(strings.Repeat("\n", b.height-1))
}

// Print inserts text above the region and returns the cursor to its
// resting position. The text may contain embedded line breaks; each one
// adds a display line. The whole control sequence is emitted as one write:
// first newlines push the terminal buffer the way plain output would, then
// the cursor moves back above the region and a line insert makes room for
// the text. Splitting this into separate writes causes visible flicker.
func (b *Bar) Print(text string) error {
	n := strings.Count(text, "\n") + 1

	var sb strings.Builder
	sb.Grow(len(text) + n + 24)
	for i := 0; i < n; i++ {
		sb.WriteByte('\n')
	}
	sb.WriteString(cursorUp(b.height + n - 1))
	sb.WriteString(insertLines(n))
	sb.WriteString(text)
	sb.WriteString(cursorDown(b.height))
	sb.WriteString(lineStart)
	return b.emit(sb.String())
}

// Printv joins the values with single spaces, like fmt.Sprintln without
// the trailing newline, and prints the result above the region. It is the
// variadic companion to Print; the two are otherwise identical.
func (b *Bar) Printv(values ...any) error {
	return b.Print(strings.TrimSuffix(fmt.Sprintln(values...), "\n"))
}

// SetLine rewrites region row y in place. Row 0 is the top of the region.
// The text must be a single line; when a maximum width is set it is
// truncated to fit. Returns ErrRowOutOfRange or ErrMultilineRow on bad
// input, before anything is written.
func (b *Bar) SetLine(y int, text string) error {
	if y < 0 || y >= b.height {
		return fmt.Errorf("%w: row %d, height %d", ErrRowOutOfRange, y, b.height)
	}
	if strings.Contains(text, "\n") {
		return fmt.Errorf("%w: row %d", ErrMultilineRow, y)
	}
	if b.maxWidth > 0 {
		text = width.Truncate(text, b.maxWidth)
	}

	// The cursor already rests on the last region row, so rewriting it
	// needs no vertical movement, only a clear.
	if y == b.height-1 {
		return b.emit(clearLine + text + lineStart)
	}

	up := b.height - y - 1
	var sb strings.Builder
	sb.Grow(len(text) + 24)
	sb.WriteString(cursorUp(up))
	sb.WriteString(clearLine)
	sb.WriteString(text)
	sb.WriteString(cursorDown(up))
	sb.WriteString(lineStart)
	return b.emit(sb.String())
}

// Close moves the cursor below the region permanently, returning the
// terminal to normal scrolling. Must be called exactly once, after all
// other operations; pair it with Open via defer.
func (b *Bar) Close() error {
	return b.emit("\n")
}

func (b *Bar) emit(payload string) error {
	if _, err := io.WriteString(b.w, payload); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}
