package events

import "sync"

// Journal is an in-memory FIFO of pending events. Producers append from
// request handling; the relay drains batches toward the broker. Nothing
// survives a restart, which matches the rest of the system's storage.
type Journal struct {
	mu      sync.Mutex
	pending []Event
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) Append(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pending = append(j.pending, e)
}

// Drain removes and returns up to max events in append order.
func (j *Journal) Drain(max int) []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.pending) == 0 {
		return nil
	}
	n := max
	if n > len(j.pending) {
		n = len(j.pending)
	}
	batch := make([]Event, n)
	copy(batch, j.pending[:n])
	j.pending = append(j.pending[:0], j.pending[n:]...)
	return batch
}

// Requeue puts a failed event back at the head so order is preserved
// across dispatch retries.
func (j *Journal) Requeue(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	e.RetryCount++
	j.pending = append([]Event{e}, j.pending...)
}

// Prepend puts drained-but-unattempted events back at the head, in order
// and without counting a retry against them.
func (j *Journal) Prepend(events []Event) {
	if len(events) == 0 {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pending = append(append([]Event{}, events...), j.pending...)
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.pending)
}
