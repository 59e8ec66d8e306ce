package audit

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/metrics"
)

func newTestLogger(t *testing.T, opts Options) (*Logger, *MockStore, *metrics.Metrics, *logtest.Hook) {
	t.Helper()
	store := NewMockStore(t)
	log, hook := logtest.NewNullLogger()
	m := metrics.NewMetrics(prometheus.NewRegistry())
	l := NewLogger(store, log, m, opts)
	l.now = func() time.Time { return time.UnixMilli(7000) }
	return l, store, m, hook
}

func TestLogChanges_CreationPersistsAndPrunes(t *testing.T) {
	l, store, m, _ := newTestLogger(t, Options{Workers: 1})
	tx := sampleTransaction()

	var written []ledger.ChangeEntry
	store.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entries []ledger.ChangeEntry) { written = entries }).
		Return(nil).Once()
	store.EXPECT().Prune(mock.Anything, int64(11), DefaultKeepCount).Return(nil).Once()

	l.Start()
	n := l.LogChanges(context.Background(), nil, tx, ledger.ChangeSourceParserUpdate)
	l.Stop()

	assert.Equal(t, 8, n)
	require.Len(t, written, 8)
	for _, e := range written {
		assert.False(t, e.ID.IsNil(), "ids are assigned on enqueue")
		assert.Equal(t, int64(7000), e.ChangedAt)
	}
	assert.Equal(t, 8.0, testutil.ToFloat64(m.AuditEntriesWritten))
}

func TestLogChanges_NoChangeNoWrite(t *testing.T) {
	l, store, _, _ := newTestLogger(t, Options{})
	tx := sampleTransaction()

	l.Start()
	n := l.LogChanges(context.Background(), tx, tx.Clone(), ledger.ChangeSourceUserEdit)
	l.Stop()

	assert.Equal(t, 0, n)
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Prune", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogChanges_SingleFieldDiff(t *testing.T) {
	l, store, _, _ := newTestLogger(t, Options{KeepCount: 5})
	before := sampleTransaction()
	after := before.Clone()
	after.Amount = 99.5

	store.EXPECT().Append(mock.Anything, mock.MatchedBy(func(entries []ledger.ChangeEntry) bool {
		return len(entries) == 1 && entries[0].Field == ledger.FieldAmount &&
			*entries[0].OldValue == "250.75" && *entries[0].NewValue == "99.5"
	})).Return(nil).Once()
	store.EXPECT().Prune(mock.Anything, int64(11), 5).Return(nil).Once()

	l.Start()
	n := l.LogChanges(context.Background(), before, after, ledger.ChangeSourceUserEdit)
	l.Stop()

	assert.Equal(t, 1, n)
}

func TestLogChanges_FailingStoreDoesNotPropagate(t *testing.T) {
	l, store, m, hook := newTestLogger(t, Options{})
	store.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	l.Start()
	n := l.LogChanges(context.Background(), nil, sampleTransaction(), ledger.ChangeSourceParserUpdate)
	l.Stop()

	assert.Equal(t, 8, n, "the caller still sees the entries as queued")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditWriteFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.AuditEntriesWritten))
	store.AssertNotCalled(t, "Prune", mock.Anything, mock.Anything, mock.Anything)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "AuditLogger.process.append failed", hook.LastEntry().Message)
}

func TestLogChanges_PruneFailureIsLogged(t *testing.T) {
	l, store, m, hook := newTestLogger(t, Options{})
	store.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
	store.EXPECT().Prune(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("lock timeout")).Once()

	l.Start()
	l.LogChanges(context.Background(), nil, sampleTransaction(), ledger.ChangeSourceParserUpdate)
	l.Stop()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditPruneFailures))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestLogChanges_CancelledCallerContextStillPersists(t *testing.T) {
	l, store, _, _ := newTestLogger(t, Options{})
	store.EXPECT().Append(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).
		Return(nil).Once()
	store.EXPECT().Prune(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	l.Start()
	l.LogChanges(ctx, nil, sampleTransaction(), ledger.ChangeSourceParserUpdate)
	cancel()
	l.Stop()
}

func TestLogChanges_AfterStopIsDropped(t *testing.T) {
	l, store, m, _ := newTestLogger(t, Options{})
	l.Start()
	l.Stop()

	n := l.LogChanges(context.Background(), nil, sampleTransaction(), ledger.ChangeSourceParserUpdate)

	assert.Equal(t, 0, n)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditDropped))
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestLogChanges_FullQueueDoesNotBlock(t *testing.T) {
	l, _, m, _ := newTestLogger(t, Options{Workers: 1, QueueSize: 1})
	// workers are not started, so the second batch has nowhere to go

	first := l.LogChanges(context.Background(), nil, sampleTransaction(), ledger.ChangeSourceParserUpdate)
	done := make(chan int)
	go func() {
		done <- l.LogChanges(context.Background(), nil, sampleTransaction(), ledger.ChangeSourceParserUpdate)
	}()

	select {
	case second := <-done:
		assert.Equal(t, 8, first)
		assert.Equal(t, 0, second)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditDropped))
	case <-time.After(time.Second):
		t.Fatal("LogChanges blocked on a full queue")
	}
}

func TestLogFieldChange(t *testing.T) {
	l, store, _, _ := newTestLogger(t, Options{})
	store.EXPECT().Append(mock.Anything, mock.MatchedBy(func(entries []ledger.ChangeEntry) bool {
		if len(entries) != 1 {
			return false
		}
		e := entries[0]
		return e.TransactionID == 3 &&
			e.Field == ledger.FieldMerchantOverride &&
			e.OldValue == nil &&
			*e.NewValue == "Blue Tokai" &&
			e.Source == ledger.ChangeSourceSystemCorrection
	})).Return(nil).Once()
	store.EXPECT().Prune(mock.Anything, int64(3), DefaultKeepCount).Return(nil).Once()

	l.Start()
	ok := l.LogFieldChange(context.Background(), 3, ledger.FieldMerchantOverride, nil, ledger.StringPtr("Blue Tokai"), ledger.ChangeSourceSystemCorrection)
	l.Stop()

	assert.True(t, ok)
}

func TestHistory(t *testing.T) {
	l, store, _, _ := newTestLogger(t, Options{})
	want := []ledger.ChangeEntry{{TransactionID: 4, Field: ledger.FieldAmount}}
	store.EXPECT().ListByTransaction(mock.Anything, int64(4)).Return(want, nil).Once()

	got, err := l.History(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewLogger_Defaults(t *testing.T) {
	l := NewLogger(NewMockStore(t), logrus.New(), nil, Options{})
	assert.Equal(t, DefaultWorkers, l.numWorkers)
	assert.Equal(t, DefaultKeepCount, l.keep)
	require.Len(t, l.queues, DefaultWorkers)
	total := 0
	for _, q := range l.queues {
		total += cap(q)
	}
	assert.Equal(t, DefaultQueueSize, total)
}

func TestLogChanges_SameTransactionStaysOrdered(t *testing.T) {
	l, store, _, _ := newTestLogger(t, Options{Workers: 4})

	var mu sync.Mutex
	var amounts []string
	store.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entries []ledger.ChangeEntry) {
			mu.Lock()
			defer mu.Unlock()
			amounts = append(amounts, *entries[0].NewValue)
		}).
		Return(nil)
	store.EXPECT().Prune(mock.Anything, int64(11), DefaultKeepCount).Return(nil)

	l.Start()
	prev := sampleTransaction()
	for i := 1; i <= 20; i++ {
		next := prev.Clone()
		next.Amount = float64(i)
		l.LogChanges(context.Background(), prev, next, ledger.ChangeSourceUserEdit)
		prev = next
	}
	l.Stop()

	require.Len(t, amounts, 20)
	for i, a := range amounts {
		assert.Equal(t, strconv.Itoa(i+1), a)
	}
}
