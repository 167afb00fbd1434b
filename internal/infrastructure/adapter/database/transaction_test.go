package database

import (
	"context"
	"sync"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type txFixture struct {
	testDB  *TestDBManager
	db      *gorm.DB
	tm      *TransactionManager
	metrics *TransactionMetrics
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	db := testDB.Connect(t)
	metrics := NewTransactionMetrics(prometheus.NewRegistry())

	return &txFixture{
		testDB:  testDB,
		db:      db,
		tm:      NewTransactionManager(db, testDB.Logger, testDB.TimeProvider, WithTransactionMetrics(metrics)),
		metrics: metrics,
	}
}

func (f *txFixture) begin(t *testing.T, ctx context.Context, def persistence.TransactionDefinition) persistence.TransactionStatus {
	t.Helper()

	status, err := f.tm.GetTransaction(ctx, def)
	require.NoError(t, err)
	return status
}

func (f *txFixture) insert(t *testing.T, ctx context.Context, id string) {
	t.Helper()

	require.NoError(t, CheckWritable(ctx))
	user := &model.User{ID: id, Name: "user-" + id, Level: 1, LastUpgraded: time.Now()}
	require.NoError(t, DBFromContext(ctx, f.db).Create(user).Error)
}

func (f *txFixture) exists(t *testing.T, id string) bool {
	t.Helper()

	var count int64
	require.NoError(t, f.db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error)
	return count == 1
}

func required(name string) persistence.TransactionDefinition {
	return persistence.DefaultDefinition().WithName(name)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit persists changes", func(t *testing.T) {
		f := newTxFixture(t)

		status := f.begin(t, ctx, required("commit"))
		assert.True(t, status.IsNewTransaction())
		assert.True(t, status.HasTransaction())
		assert.False(t, status.IsReadOnly())

		f.insert(t, status.Context(), "1")
		f.insert(t, status.Context(), "2")
		require.NoError(t, f.tm.Commit(status))

		assert.True(t, status.IsCompleted())
		assert.Equal(t, int64(2), f.testDB.CountUsers(t))
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.finished.WithLabelValues("REQUIRED", OutcomeCommitted)))
		assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.active))
	})

	t.Run("Rollback discards changes", func(t *testing.T) {
		f := newTxFixture(t)

		status := f.begin(t, ctx, required("rollback"))
		f.insert(t, status.Context(), "1")
		f.insert(t, status.Context(), "2")
		require.NoError(t, f.tm.Rollback(status))

		assert.Equal(t, int64(0), f.testDB.CountUsers(t))
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.finished.WithLabelValues("REQUIRED", OutcomeRolledBack)))
	})

	t.Run("Completing twice fails", func(t *testing.T) {
		f := newTxFixture(t)

		status := f.begin(t, ctx, required("twice"))
		require.NoError(t, f.tm.Commit(status))

		assert.ErrorIs(t, f.tm.Commit(status), errs.ErrTransactionCompleted)
		assert.ErrorIs(t, f.tm.Rollback(status), errs.ErrTransactionCompleted)
	})

	t.Run("Foreign status is rejected", func(t *testing.T) {
		f := newTxFixture(t)
		other := NewTransactionManager(f.db, f.testDB.Logger, f.testDB.TimeProvider)

		status := f.begin(t, ctx, required("foreign"))
		defer func() { _ = f.tm.Rollback(status) }()

		assert.ErrorIs(t, other.Commit(status), errs.ErrInvalidTransactionStatus)
		assert.False(t, status.IsCompleted())
	})

	t.Run("Invalid definition is rejected", func(t *testing.T) {
		f := newTxFixture(t)

		_, err := f.tm.GetTransaction(ctx, required("bad").WithTimeout(-time.Second))

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionDefinition)
	})
}

func TestTransactionManager_Required(t *testing.T) {
	ctx := context.Background()

	t.Run("Inner scope joins the outer transaction", func(t *testing.T) {
		f := newTxFixture(t)

		outer := f.begin(t, ctx, required("outer"))
		inner := f.begin(t, outer.Context(), required("inner"))

		assert.False(t, inner.IsNewTransaction())
		assert.True(t, inner.HasTransaction())

		f.insert(t, inner.Context(), "1")
		require.NoError(t, f.tm.Commit(inner))
		assert.Equal(t, int64(0), f.testDB.CountUsers(t))

		require.NoError(t, f.tm.Commit(outer))
		assert.Equal(t, int64(1), f.testDB.CountUsers(t))
	})

	t.Run("Inner rollback turns outer commit into an unexpected rollback", func(t *testing.T) {
		f := newTxFixture(t)

		outer := f.begin(t, ctx, required("outer"))
		f.insert(t, outer.Context(), "1")

		inner := f.begin(t, outer.Context(), required("inner"))
		f.insert(t, inner.Context(), "2")
		require.NoError(t, f.tm.Rollback(inner))

		assert.True(t, outer.IsRollbackOnly())

		err := f.tm.Commit(outer)
		assert.ErrorIs(t, err, errs.ErrUnexpectedRollback)

		var txErr *errs.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, "outer", txErr.Name)

		assert.Equal(t, int64(0), f.testDB.CountUsers(t))
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.finished.WithLabelValues("REQUIRED", OutcomeUnexpectedRollback)))
	})

	t.Run("Local rollback-only rolls back silently", func(t *testing.T) {
		f := newTxFixture(t)

		status := f.begin(t, ctx, required("local"))
		f.insert(t, status.Context(), "1")
		status.SetRollbackOnly()

		require.NoError(t, f.tm.Commit(status))
		assert.Equal(t, int64(0), f.testDB.CountUsers(t))
	})
}

func TestTransactionManager_RequiresNew(t *testing.T) {
	ctx := context.Background()
	requiresNew := required("inner").WithPropagation(persistence.PropagationRequiresNew)

	// countOnCompletion records what the outer transaction's hook observes
	countOnCompletion := func(t *testing.T, f *txFixture, outer persistence.TransactionStatus) (*persistence.CompletionStatus, *int64) {
		completion := persistence.CompletionStatus(-1)
		count := int64(-1)
		outer.RegisterSynchronization(persistence.SynchronizationFunc(
			func(syncCtx context.Context, status persistence.CompletionStatus) {
				completion = status
				require.NoError(t, DBFromContext(syncCtx, f.db).Model(&model.User{}).Count(&count).Error)
			},
		))
		return &completion, &count
	}

	t.Run("Inner commit survives outer rollback", func(t *testing.T) {
		f := newTxFixture(t)

		outer := f.begin(t, ctx, required("outer"))
		completion, count := countOnCompletion(t, f, outer)

		inner := f.begin(t, outer.Context(), requiresNew)
		assert.True(t, inner.IsNewTransaction())

		f.insert(t, inner.Context(), "inner")
		require.NoError(t, f.tm.Commit(inner))
		assert.True(t, f.exists(t, "inner"))

		f.insert(t, outer.Context(), "outer")
		require.NoError(t, f.tm.Rollback(outer))

		assert.Equal(t, persistence.CompletionRolledBack, *completion)
		assert.Equal(t, int64(1), *count)
		assert.True(t, f.exists(t, "inner"))
		assert.False(t, f.exists(t, "outer"))
		assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.begun.WithLabelValues("REQUIRES_NEW", "transaction"))+
			testutil.ToFloat64(f.metrics.begun.WithLabelValues("REQUIRED", "transaction")))
	})

	t.Run("Inner rollback leaves the outer transaction usable", func(t *testing.T) {
		f := newTxFixture(t)

		outer := f.begin(t, ctx, required("outer"))
		completion, count := countOnCompletion(t, f, outer)

		inner := f.begin(t, outer.Context(), requiresNew)
		f.insert(t, inner.Context(), "inner")
		require.NoError(t, f.tm.Rollback(inner))

		assert.False(t, outer.IsRollbackOnly())
		assert.False(t, f.exists(t, "inner"))

		f.insert(t, outer.Context(), "outer")
		require.NoError(t, f.tm.Rollback(outer))

		assert.Equal(t, persistence.CompletionRolledBack, *completion)
		assert.Equal(t, int64(0), *count)
		assert.False(t, f.exists(t, "outer"))
	})
}

func TestTransactionManager_Nested(t *testing.T) {
	ctx := context.Background()
	nested := required("nested").WithPropagation(persistence.PropagationNested)

	t.Run("Savepoint rollback keeps outer work", func(t *testing.T) {
		f := newTxFixture(t)

		outer := f.begin(t, ctx, required("outer"))
		f.insert(t, outer.Context(), "1")

		inner := f.begin(t, outer.Context(), nested)
		assert.True(t, inner.IsNewTransaction())
		f.insert(t, inner.Context(), "2")
		require.NoError(t, f.tm.Rollback(inner))

		assert.False(t, outer.IsRollbackOnly())
		require.NoError(t, f.tm.Commit(outer))

		assert.True(t, f.exists(t, "1"))
		assert.False(t, f.exists(t, "2"))
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.begun.WithLabelValues("NESTED", "savepoint")))
	})

	t.Run("Released savepoint commits with the outer transaction", func(t *testing.T) {
		f := newTxFixture(t)

		outer := f.begin(t, ctx, required("outer"))
		inner := f.begin(t, outer.Context(), nested)
		f.insert(t, inner.Context(), "2")
		require.NoError(t, f.tm.Commit(inner))
		require.NoError(t, f.tm.Commit(outer))

		assert.True(t, f.exists(t, "2"))
	})

	t.Run("Without an outer transaction it begins one", func(t *testing.T) {
		f := newTxFixture(t)

		status := f.begin(t, ctx, nested)
		assert.True(t, status.IsNewTransaction())
		assert.True(t, status.HasTransaction())
		require.NoError(t, f.tm.Rollback(status))
	})
}

func TestTransactionManager_NonTransactionalPropagations(t *testing.T) {
	ctx := context.Background()

	t.Run("MANDATORY requires a transaction", func(t *testing.T) {
		f := newTxFixture(t)
		mandatory := required("mandatory").WithPropagation(persistence.PropagationMandatory)

		_, err := f.tm.GetTransaction(ctx, mandatory)
		assert.ErrorIs(t, err, errs.ErrNoExistingTransaction)

		outer := f.begin(t, ctx, required("outer"))
		inner := f.begin(t, outer.Context(), mandatory)
		assert.False(t, inner.IsNewTransaction())
		assert.True(t, inner.HasTransaction())
		require.NoError(t, f.tm.Commit(inner))
		require.NoError(t, f.tm.Commit(outer))
	})

	t.Run("NEVER refuses an active transaction", func(t *testing.T) {
		f := newTxFixture(t)
		never := required("never").WithPropagation(persistence.PropagationNever)

		outer := f.begin(t, ctx, required("outer"))
		_, err := f.tm.GetTransaction(outer.Context(), never)
		assert.ErrorIs(t, err, errs.ErrExistingTransaction)
		require.NoError(t, f.tm.Rollback(outer))

		status := f.begin(t, ctx, never)
		assert.False(t, status.HasTransaction())
		require.NoError(t, f.tm.Commit(status))
	})

	t.Run("SUPPORTS without a transaction writes immediately", func(t *testing.T) {
		f := newTxFixture(t)

		status := f.begin(t, ctx, required("supports").WithPropagation(persistence.PropagationSupports))
		assert.False(t, status.HasTransaction())

		f.insert(t, status.Context(), "1")
		require.NoError(t, f.tm.Rollback(status))

		assert.True(t, f.exists(t, "1"))
	})

	t.Run("NOT_SUPPORTED hides the outer transaction", func(t *testing.T) {
		f := newTxFixture(t)

		outer := f.begin(t, ctx, required("outer"))
		inner := f.begin(t, outer.Context(), required("inner").WithPropagation(persistence.PropagationNotSupported))
		assert.False(t, inner.HasTransaction())

		f.insert(t, inner.Context(), "1")
		require.NoError(t, f.tm.Commit(inner))
		require.NoError(t, f.tm.Rollback(outer))

		assert.True(t, f.exists(t, "1"))
	})
}

func TestTransactionManager_ReadOnly(t *testing.T) {
	ctx := context.Background()
	f := newTxFixture(t)

	outer := f.begin(t, ctx, required("read").WithReadOnly(true))
	assert.True(t, outer.IsReadOnly())
	assert.ErrorIs(t, CheckWritable(outer.Context()), errs.ErrReadOnlyTransaction)

	inner := f.begin(t, outer.Context(), required("inner"))
	assert.True(t, inner.IsReadOnly())
	assert.ErrorIs(t, CheckWritable(inner.Context()), errs.ErrReadOnlyTransaction)

	require.NoError(t, f.tm.Commit(inner))
	require.NoError(t, f.tm.Commit(outer))

	assert.NoError(t, CheckWritable(outer.Context()))
}

func TestTransactionManager_Synchronizations(t *testing.T) {
	ctx := context.Background()

	t.Run("Callbacks run once the outer transaction commits", func(t *testing.T) {
		f := newTxFixture(t)

		var mu sync.Mutex
		var got []persistence.CompletionStatus
		record := persistence.SynchronizationFunc(func(_ context.Context, status persistence.CompletionStatus) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, status)
		})

		outer := f.begin(t, ctx, required("outer"))
		inner := f.begin(t, outer.Context(), required("inner"))
		assert.True(t, persistence.RegisterSynchronization(inner.Context(), record))

		require.NoError(t, f.tm.Commit(inner))
		assert.Empty(t, got)

		require.NoError(t, f.tm.Commit(outer))
		assert.Equal(t, []persistence.CompletionStatus{persistence.CompletionCommitted}, got)
	})

	t.Run("Panicking callback does not break completion", func(t *testing.T) {
		f := newTxFixture(t)

		called := false
		status := f.begin(t, ctx, required("outer"))
		status.RegisterSynchronization(persistence.SynchronizationFunc(func(context.Context, persistence.CompletionStatus) {
			panic("boom")
		}))
		status.RegisterSynchronization(persistence.SynchronizationFunc(func(context.Context, persistence.CompletionStatus) {
			called = true
		}))

		require.NoError(t, f.tm.Commit(status))
		assert.True(t, called)
	})

	t.Run("Scope without transaction runs its own callbacks", func(t *testing.T) {
		f := newTxFixture(t)

		var got persistence.CompletionStatus = -1
		status := f.begin(t, ctx, required("supports").WithPropagation(persistence.PropagationSupports))
		status.RegisterSynchronization(persistence.SynchronizationFunc(func(_ context.Context, s persistence.CompletionStatus) {
			got = s
		}))

		require.NoError(t, f.tm.Rollback(status))
		assert.Equal(t, persistence.CompletionRolledBack, got)
	})
}

func TestTransactionManager_Timeout(t *testing.T) {
	ctx := context.Background()
	f := newTxFixture(t)

	status := f.begin(t, ctx, required("slow").WithTimeout(200*time.Millisecond))
	f.insert(t, status.Context(), "1")

	<-status.Context().Done()

	err := f.tm.Commit(status)
	assert.ErrorIs(t, err, errs.ErrUnexpectedRollback)
	assert.Equal(t, int64(0), f.testDB.CountUsers(t))
}

func TestDBFromContext(t *testing.T) {
	f := newTxFixture(t)

	t.Run("Falls back without a scope", func(t *testing.T) {
		conn := DBFromContext(context.Background(), f.db)
		assert.NotNil(t, conn)
		assert.NoError(t, CheckWritable(context.Background()))
	})

	t.Run("Completed scope falls back", func(t *testing.T) {
		status := f.begin(t, context.Background(), required("done"))
		require.NoError(t, f.tm.Commit(status))

		f.insert(t, status.Context(), "after")
		assert.True(t, f.exists(t, "after"))
	})
}
