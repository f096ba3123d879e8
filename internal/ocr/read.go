package ocr

import (
	"context"
	"sync"
	"time"
)

// Status describes where a read operation is in its lifecycle.
type Status string

const (
	StatusNotStarted Status = "notStarted"
	StatusRunning    Status = "running"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status will no longer change.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Polling cadence for ReadOperation.Wait. The interval doubles after
// every poll until it reaches the cap, so short documents resolve fast
// while long ones do not busy-wait.
const (
	pollBase = 500 * time.Millisecond
	pollCap  = 5 * time.Second
)

// ReadOperation is an asynchronous text recognition job. Recognition runs
// in a background goroutine; callers poll with Poll or block with Wait.
// The zero value is not usable, construct one with Submit.
type ReadOperation struct {
	mu     sync.Mutex
	status Status
	result *Result
	err    error
	done   chan struct{}
}

// Submit starts recognizing the PNG-encoded image on engine in the
// background and returns immediately.
func Submit(engine Engine, png []byte, language string) *ReadOperation {
	op := &ReadOperation{
		status: StatusRunning,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(op.done)
		result, err := engine.Recognize(context.Background(), png, language)

		op.mu.Lock()
		defer op.mu.Unlock()
		if err != nil {
			op.status = StatusFailed
			op.err = ocrErrors.NewWithCause(ErrRecognitionFailed, err)
			return
		}
		op.status = StatusSucceeded
		op.result = result
	}()

	return op
}

// Poll returns the operation's current status and, once it has succeeded
// or failed, the result or error.
func (op *ReadOperation) Poll() (Status, *Result, error) {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.status, op.result, op.err
}

// Wait blocks until the operation reaches a terminal status or ctx is
// done. It polls with an exponential backoff starting at 500ms and
// capped at 5s rather than blocking on completion directly, so a Wait
// caller observes the same states an external poller would.
func (op *ReadOperation) Wait(ctx context.Context) (*Result, error) {
	interval := pollBase
	for {
		status, result, err := op.Poll()
		if status.Terminal() {
			return result, err
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-op.done:
			timer.Stop()
		case <-timer.C:
		}

		interval *= 2
		if interval > pollCap {
			interval = pollCap
		}
	}
}
