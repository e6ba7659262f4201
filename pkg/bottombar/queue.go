// ABOUTME: Serializes renderer calls from many goroutines through one owner
// ABOUTME: Requests travel over a channel; only the owner goroutine touches the Bar

package bottombar

import (
	"errors"
	"sync"
)

// ErrQueueClosed reports an operation on a closed Queue.
var ErrQueueClosed = errors.New("bottombar: queue is closed")

// request is one renderer call plus the channel carrying its result.
type request struct {
	run   func(*Bar) error
	reply chan error
}

// Queue serializes Bar operations from multiple goroutines. A single owner
// goroutine receives requests over a channel and is the only writer to the
// Bar, so every escape payload still reaches the terminal contiguously.
// Calls block until the owner has performed them, preserving FIFO order
// per caller. Sharing a Bar with ad hoc locking instead would risk
// interleaving partial escape sequences.
type Queue struct {
	bar       *Bar
	requests  chan request
	done      chan struct{}
	closeOnce sync.Once
}

// NewQueue wraps bar and starts the owner goroutine. The caller keeps
// responsibility for Open and Close on the Bar; close the Queue first.
func NewQueue(bar *Bar) *Queue {
	q := &Queue{
		bar:      bar,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	go q.serve()
	return q
}

func (q *Queue) serve() {
	for {
		select {
		case <-q.done:
			return
		case req := <-q.requests:
			req.reply <- req.run(q.bar)
		}
	}
}

func (q *Queue) do(run func(*Bar) error) error {
	req := request{run: run, reply: make(chan error, 1)}
	select {
	case <-q.done:
		return ErrQueueClosed
	case q.requests <- req:
		return <-req.reply
	}
}

// Print inserts text above the region. See Bar.Print.
func (q *Queue) Print(text string) error {
	return q.do(func(b *Bar) error { return b.Print(text) })
}

// Printv joins the values with single spaces and prints them above the
// region. See Bar.Printv.
func (q *Queue) Printv(values ...any) error {
	return q.do(func(b *Bar) error { return b.Printv(values...) })
}

// SetLine rewrites region row y. See Bar.SetLine.
func (q *Queue) SetLine(y int, text string) error {
	return q.do(func(b *Bar) error { return b.SetLine(y, text) })
}

// Close stops the owner goroutine. Pending callers and any later calls
// receive ErrQueueClosed. Safe to call multiple times. The underlying Bar
// stays usable by the caller afterwards.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}
