// Package queue delivers accepted leads to the notifier off the request path.
package queue

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Notification results reported to the observer.
const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
	ResultDropped   = "dropped"
)

// Dispatcher routes leads to a fixed set of workers using consistent hashing
// on the submitter's email, so leads from one person are delivered in order.
type Dispatcher struct {
	workers  []chan domain.ContactFormSubmission
	notifier ports.LeadNotifier
	observe  func(result string)
	wg       sync.WaitGroup
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.LeadNotifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.ContactFormSubmission, numWorkers),
		notifier: notifier,
		observe:  func(string) {},
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ContactFormSubmission, channelBuffer)
	}
	return d
}

// OnResult registers fn to be called with the outcome of every lead.
func (d *Dispatcher) OnResult(fn func(result string)) {
	if fn != nil {
		d.observe = fn
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Publish hands lead to its worker. It never blocks: when the worker's buffer
// is full the lead is dropped and logged, since it is already stored.
func (d *Dispatcher) Publish(lead domain.ContactFormSubmission) {
	select {
	case d.workers[d.shardIndex(lead.Email)] <- lead:
	default:
		d.observe(ResultDropped)
		d.log.Warn().Uint64("id", lead.ID).Msg("lead notification queue full, dropping")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(email)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ContactFormSubmission) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case lead, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.Notify(ctx, lead); err != nil {
				d.observe(ResultFailed)
				d.log.Error().Err(err).
					Uint64("id", lead.ID).
					Int("worker_id", id).
					Msg("lead notification failed")
				continue
			}
			d.observe(ResultDelivered)
		}
	}
}
