package audit

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/metrics"
)

const (
	DefaultKeepCount = 100
	DefaultWorkers   = 2
	DefaultQueueSize = 1000
)

// Store persists change entries. It is owned by the storage collaborator.
//
//go:generate mockery --name Store --inpackage --with-expecter --filename mock_Store.go
type Store interface {
	Append(ctx context.Context, entries []ledger.ChangeEntry) error
	Prune(ctx context.Context, transactionID int64, keep int) error
	ListByTransaction(ctx context.Context, transactionID int64) ([]ledger.ChangeEntry, error)
}

// Options configures the audit worker pool.
type Options struct {
	Workers   int
	QueueSize int
	KeepCount int
}

// changeBatch is one queued unit of work: all entries belong to the same transaction.
type changeBatch struct {
	ctx           context.Context
	transactionID int64
	entries       []ledger.ChangeEntry
}

// Logger records field-level changes. Writes are queued and persisted by a pool of
// workers, so a slow or failing audit store never blocks or fails the mutation that
// produced the change.
type Logger struct {
	store   Store
	log     *logrus.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	queues     []chan changeBatch
	numWorkers int
	keep       int

	mu       sync.RWMutex
	closed   bool
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewLogger creates a Logger. Call Start before logging and Stop to drain the queue.
func NewLogger(store Store, log *logrus.Logger, m *metrics.Metrics, opts Options) *Logger {
	if opts.Workers < 1 {
		opts.Workers = DefaultWorkers
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.KeepCount < 1 {
		opts.KeepCount = DefaultKeepCount
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &Logger{
		store:      store,
		log:        log,
		metrics:    m,
		now:        time.Now,
		queues:     newQueues(opts.Workers, opts.QueueSize),
		numWorkers: opts.Workers,
		keep:       opts.KeepCount,
	}
}

// newQueues splits the queue capacity across one queue per worker.
func newQueues(workers, size int) []chan changeBatch {
	perWorker := (size + workers - 1) / workers
	queues := make([]chan changeBatch, workers)
	for i := range queues {
		queues[i] = make(chan changeBatch, perWorker)
	}
	return queues
}

// Start launches one worker per queue. A transaction always maps to the same queue, so
// its batches are appended and pruned in the order they were logged.
func (l *Logger) Start() {
	for _, queue := range l.queues {
		l.wg.Add(1)
		go func(queue chan changeBatch) {
			defer l.wg.Done()
			for item := range queue {
				l.process(item)
			}
		}(queue)
	}
}

// Stop closes the queue and waits until every queued batch has been processed.
func (l *Logger) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		for _, queue := range l.queues {
			close(queue)
		}
		l.mu.Unlock()
		l.wg.Wait()
	})
}

// LogChanges diffs old against next and queues one entry per changed tracked field.
// It returns the number of entries queued; zero means nothing was written.
func (l *Logger) LogChanges(ctx context.Context, old, next *ledger.Transaction, source ledger.ChangeSource) int {
	entries := Diff(old, next, source, l.now().UnixMilli())
	if len(entries) == 0 {
		return 0
	}
	if !l.enqueue(ctx, next.ID, entries) {
		return 0
	}
	return len(entries)
}

// LogFieldChange queues a single entry for a field the caller already knows changed.
func (l *Logger) LogFieldChange(ctx context.Context, transactionID int64, field string, oldValue, newValue *string, source ledger.ChangeSource) bool {
	entry := ledger.ChangeEntry{
		TransactionID: transactionID,
		Field:         field,
		OldValue:      oldValue,
		NewValue:      newValue,
		ChangedAt:     l.now().UnixMilli(),
		Source:        source,
	}
	return l.enqueue(ctx, transactionID, []ledger.ChangeEntry{entry})
}

// History returns the retained change entries for a transaction, oldest first.
func (l *Logger) History(ctx context.Context, transactionID int64) ([]ledger.ChangeEntry, error) {
	return l.store.ListByTransaction(ctx, transactionID)
}

func (l *Logger) enqueue(ctx context.Context, transactionID int64, entries []ledger.ChangeEntry) bool {
	for i := range entries {
		id, err := uuid.NewV7()
		if err != nil {
			l.log.WithError(err).Error("AuditLogger.enqueue.id generation failed")
			l.metrics.AuditDropped.Inc()
			return false
		}
		entries[i].ID = id
	}

	item := changeBatch{
		ctx:           context.WithoutCancel(ctx),
		transactionID: transactionID,
		entries:       entries,
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		l.dropped(transactionID, len(entries), "stopped")
		return false
	}

	select {
	case l.queueFor(transactionID) <- item:
		return true
	default:
		l.dropped(transactionID, len(entries), "queue full")
		return false
	}
}

func (l *Logger) queueFor(transactionID int64) chan changeBatch {
	i := transactionID % int64(len(l.queues))
	if i < 0 {
		i = -i
	}
	return l.queues[i]
}

func (l *Logger) dropped(transactionID int64, count int, reason string) {
	l.metrics.AuditDropped.Inc()
	l.log.WithFields(logrus.Fields{
		"transactionID": transactionID,
		"entryCount":    count,
		"reason":        reason,
	}).Error("AuditLogger.enqueue.dropped")
}

func (l *Logger) process(item changeBatch) {
	fields := logrus.Fields{
		"transactionID": item.transactionID,
		"entryCount":    len(item.entries),
	}

	if err := l.store.Append(item.ctx, item.entries); err != nil {
		l.metrics.AuditWriteFailures.Inc()
		l.log.WithError(err).WithFields(fields).Error("AuditLogger.process.append failed")
		return
	}
	l.metrics.AuditEntriesWritten.Add(float64(len(item.entries)))

	if err := l.store.Prune(item.ctx, item.transactionID, l.keep); err != nil {
		l.metrics.AuditPruneFailures.Inc()
		l.log.WithError(err).WithFields(fields).Warn("AuditLogger.process.prune failed")
	}
}
