package worker

import (
	"sync"

	"github.com/getsentry/sentry-go"
)

// Queue runs submitted functions one after another on a single goroutine, in the order they were
// submitted. A function that panics is reported to sentry and does not stop the queue.
type Queue struct {
	queue chan func()
	once  sync.Once
	done  chan struct{}
}

// NewQueue starts a Queue that buffers up to size functions before Submit blocks.
func NewQueue(size int) *Queue {
	q := &Queue{queue: make(chan func(), size), done: make(chan struct{})}
	go q.work()
	return q
}

func (q *Queue) work() {
	defer close(q.done)
	for f := range q.queue {
		run(f)
	}
}

func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit adds a function to the queue.
func (q *Queue) Submit(f func()) {
	q.queue <- f
}

// Wait submits a function and blocks until every function submitted before it has run.
func (q *Queue) Wait() {
	c := make(chan struct{})
	q.Submit(func() { close(c) })
	<-c
}

// Close stops accepting functions and waits for the queued ones to run. Submit must not be called after
// Close.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.queue)
	})
	<-q.done
}
