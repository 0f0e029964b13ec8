package engine

import "time"

// FrameFunc is invoked with the timestamp of the refresh it runs on.
type FrameFunc func(now time.Time)

// FrameID identifies a requested frame. Zero is never issued.
type FrameID uint64

// Scheduler delivers requested frames on the host's refresh signal.
// CancelFrame may not be able to stop a frame that is already being
// delivered; the engine guards against that itself.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a single-slot Scheduler driven by the host: each call to
// Fire delivers the pending frame, if any. A newer request replaces an
// older one. It is not safe for concurrent use; the host fires frames from
// the same goroutine that starts and stops the engine.
type FrameQueue struct {
	nextID  FrameID
	pending FrameID
	fn      FrameFunc
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = q.nextID
	q.fn = fn
	return q.pending
}

// CancelFrame implements Scheduler. Unknown or stale ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 || id != q.pending {
		return
	}
	q.pending = 0
	q.fn = nil
}

// Pending reports whether a frame is waiting for the next Fire.
func (q *FrameQueue) Pending() bool {
	return q.fn != nil
}

// Fire delivers the pending frame at now. The slot is cleared before the
// frame runs so the frame can request its successor.
// Returns false when nothing was pending.
func (q *FrameQueue) Fire(now time.Time) bool {
	fn := q.fn
	if fn == nil {
		return false
	}
	q.pending = 0
	q.fn = nil
	fn(now)
	return true
}
