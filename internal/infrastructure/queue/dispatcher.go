package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bookhaven/catalog-api/internal/api/metrics"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes review activity to a fixed set of workers using
// consistent hashing on the ISBN, guaranteeing per-book ordering of the
// audit trail.
type Dispatcher struct {
	workers []chan ports.ReviewActivity
	sink    ports.ActivitySink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.ActivitySink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ReviewActivity, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReviewActivity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish sends an activity entry to the worker responsible for its book.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Publish(activity ports.ReviewActivity) {
	i := d.shardIndex(activity.ISBN)
	d.workers[i] <- activity
	metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps an ISBN deterministically to a worker index.
func (d *Dispatcher) shardIndex(isbn string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(isbn))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReviewActivity) {
	for {
		select {
		case <-ctx.Done():
			return
		case activity, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.sink.Process(ctx, activity); err != nil {
				d.log.Error().Err(err).
					Str("isbn", activity.ISBN).
					Int("worker_id", id).
					Msg("activity processing failed")
			}
		}
	}
}
