package events

import (
	"context"
	"log/slog"
	"time"
)

// Relay drains the journal on a fixed interval and pushes each batch through
// the dispatcher. An event that fails to dispatch goes back to the head of
// the journal together with the unattempted rest of its batch; after
// maxRetries the failed event is dropped so one dead event cannot wedge the
// stream.
type Relay struct {
	log        *slog.Logger
	journal    *Journal
	dispatch   *Dispatcher
	batchSize  int
	interval   time.Duration
	maxRetries int
}

func NewRelay(log *slog.Logger, journal *Journal, dispatch *Dispatcher) *Relay {
	return &Relay{
		log:        log,
		journal:    journal,
		dispatch:   dispatch,
		batchSize:  100,
		interval:   500 * time.Millisecond,
		maxRetries: 5,
	}
}

func (r *Relay) Run(ctx context.Context) error {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("relay stopping", "pending", r.journal.Len())
			return nil
		case <-t.C:
			batch := r.journal.Drain(r.batchSize)
			for i, e := range batch {
				if err := r.dispatch.Dispatch(ctx, e); err != nil {
					// Put the unattempted tail back first, then the failed
					// event ahead of it, so nothing drained is ever lost.
					r.journal.Prepend(batch[i+1:])
					if e.RetryCount >= r.maxRetries {
						r.log.Error("event dropped after retries", "event_id", e.ID, "type", e.Type)
					} else {
						r.journal.Requeue(e)
					}
					break
				}
			}
		}
	}
}
