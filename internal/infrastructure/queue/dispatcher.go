package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher writes identity-event audit records asynchronously through
// a fixed set of workers, sharded by clerk id so one user's events land in
// the trail in arrival order. Audit writes are best-effort: failures are
// logged and never affect webhook response semantics.
type AuditDispatcher struct {
	workers []chan domain.IdentityEventRecord
	repo    ports.EventRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates an AuditDispatcher with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.EventRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.IdentityEventRecord, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.IdentityEventRecord, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a record to the worker responsible for its clerk id. When
// the worker's buffer is full the record is dropped rather than blocking the
// webhook request path.
func (d *AuditDispatcher) Enqueue(record domain.IdentityEventRecord) {
	ch := d.workers[d.shardIndex(record.ClerkID)]
	select {
	case ch <- record:
	default:
		d.log.Warn().Str("message_id", record.MessageID).Msg("audit queue full, record dropped")
	}
}

// shardIndex maps a clerk id deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(clerkID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clerkID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.IdentityEventRecord) {
	for {
		select {
		case <-ctx.Done():
			return
		case record, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.InsertEvent(ctx, &record); err != nil {
				d.log.Warn().Err(err).
					Str("message_id", record.MessageID).
					Int("worker_id", id).
					Msg("failed to insert audit record")
			}
		}
	}
}
