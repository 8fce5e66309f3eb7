package service

import (
	"context"
	"sync"

	"rangelens/internal/platform/logger"
	dom "rangelens/internal/services/comparison/domain"

	"github.com/google/uuid"
)

// Tracker holds the latest resolved labels for one chart and re-derives them
// whenever its inputs change by value. Each Update starts a fresh batch; a
// newer Update cancels the in-flight one, and a superseded batch can never
// overwrite a newer batch's labels. Failed batches leave the previous labels
// in place (stale but advisory-only display).
type Tracker struct {
	svc dom.ServicePort
	log *logger.Logger

	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	last     dom.ResolveInput
	hasLast  bool
	labels   []string
	inflight sync.WaitGroup
}

// NewTracker builds a Tracker over the given service
func NewTracker(svc dom.ServicePort) *Tracker {
	return &Tracker{svc: svc, log: logger.Named("tracker")}
}

// Update re-derives labels when in differs by value from the previous input.
// The resolution runs asynchronously; use Labels for the latest snapshot and
// Sync to wait for quiescence.
func (t *Tracker) Update(ctx context.Context, in dom.ResolveInput) {
	t.mu.Lock()
	if t.hasLast && t.last.Equal(in) {
		t.mu.Unlock()
		return
	}
	t.last = in
	t.hasLast = true
	t.gen++
	gen := t.gen
	if t.cancel != nil {
		t.cancel()
	}
	bctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.inflight.Add(1)
	t.mu.Unlock()

	bctx = logger.WithBatch(bctx, uuid.NewString())

	go func() {
		defer t.inflight.Done()
		labels, err := t.svc.ResolveLabels(bctx, in)

		t.mu.Lock()
		defer t.mu.Unlock()
		if gen != t.gen {
			// a newer batch superseded this one; discard whatever it found
			return
		}
		if err != nil {
			logger.C(bctx).Warn().Err(err).Msg("label batch failed, keeping previous labels")
			return
		}
		t.labels = labels
	}()
}

// Labels returns a copy of the latest successfully resolved labels
func (t *Tracker) Labels() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Sync blocks until every batch started so far has finished or been discarded
func (t *Tracker) Sync() { t.inflight.Wait() }

// Close cancels any in-flight batch and waits for it to drain
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	t.mu.Unlock()
	t.inflight.Wait()
}
