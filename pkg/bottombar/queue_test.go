// ABOUTME: Tests for Queue serialization: payload parity, contiguity, close behavior
// ABOUTME: Hammers the queue from many goroutines and inspects individual writes

package bottombar

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestQueue_MatchesDirectBarOutput(t *testing.T) {
	t.Parallel()

	var direct bytes.Buffer
	bar, _ := New(&direct, 3)
	_ = bar.SetLine(0, "status")
	_ = bar.Print("a line")
	_ = bar.Printv("x", 1)

	var queued bytes.Buffer
	qbar, _ := New(&queued, 3)
	q := NewQueue(qbar)
	defer q.Close()

	if err := q.SetLine(0, "status"); err != nil {
		t.Fatalf("SetLine: %v", err)
	}
	if err := q.Print("a line"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if err := q.Printv("x", 1); err != nil {
		t.Fatalf("Printv: %v", err)
	}

	if queued.String() != direct.String() {
		t.Errorf("queued output = %q; want same as direct %q", queued.String(), direct.String())
	}
}

func TestQueue_ConcurrentWritesStayContiguous(t *testing.T) {
	t.Parallel()

	const goroutines = 8
	const perGoroutine = 25

	var w recordingWriter
	bar, _ := New(&w, 4)
	q := NewQueue(bar)
	defer q.Close()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				if err := q.Print("worker line"); err != nil {
					t.Errorf("Print: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	writes := w.all()
	if len(writes) != goroutines*perGoroutine {
		t.Fatalf("got %d writes; want %d (one per operation)", len(writes), goroutines*perGoroutine)
	}
	for i, payload := range writes {
		if !strings.HasPrefix(payload, "\n") || !strings.HasSuffix(payload, "\033[4B\033[E") {
			t.Fatalf("write #%d = %q; payload split or interleaved", i, payload)
		}
	}
}

func TestQueue_ErrorsPropagateToCaller(t *testing.T) {
	t.Parallel()

	bar, _ := New(&bytes.Buffer{}, 2)
	q := NewQueue(bar)
	defer q.Close()

	if err := q.SetLine(5, "x"); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("SetLine(5) through queue error = %v; want ErrRowOutOfRange", err)
	}
}

func TestQueue_CloseRejectsFurtherCalls(t *testing.T) {
	t.Parallel()

	bar, _ := New(&bytes.Buffer{}, 2)
	q := NewQueue(bar)
	q.Close()
	q.Close() // idempotent

	if err := q.Print("late"); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Print after Close error = %v; want ErrQueueClosed", err)
	}
	// The Bar itself stays usable by its owner.
	if err := bar.Print("direct"); err != nil {
		t.Errorf("direct Print after queue close: %v", err)
	}
}
