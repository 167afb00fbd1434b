package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
	"gorm.io/gorm"
)

// TransactionManager implements persistence.TransactionManager on top of gorm.
// Scopes travel in the context; repositories pick the bound transaction up
// through DBFromContext.
type TransactionManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
	metrics      *TransactionMetrics
	retry        RetryConfig
}

var _ persistence.TransactionManager = (*TransactionManager)(nil)

// TransactionManagerOption configures a TransactionManager
type TransactionManagerOption func(*TransactionManager)

// WithTransactionMetrics exports begin/commit/rollback activity
func WithTransactionMetrics(metrics *TransactionMetrics) TransactionManagerOption {
	return func(m *TransactionManager) {
		m.metrics = metrics
	}
}

// WithBeginRetry retries beginning a transaction on transient errors
func WithBeginRetry(config RetryConfig) TransactionManagerOption {
	return func(m *TransactionManager) {
		m.retry = config
	}
}

// NewTransactionManager creates a new TransactionManager
func NewTransactionManager(
	db *gorm.DB,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	opts ...TransactionManagerOption,
) *TransactionManager {
	m := &TransactionManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
		retry:        RetryConfig{MaxAttempts: 1},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetTransaction returns a scope for definition according to its propagation
func (m *TransactionManager) GetTransaction(
	ctx context.Context,
	definition persistence.TransactionDefinition,
) (persistence.TransactionStatus, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := definition.Validate(); err != nil {
		return nil, m.txError(definition, "begin", err)
	}

	current := m.currentStatus(ctx)

	switch definition.Propagation {
	case persistence.PropagationRequired:
		if current != nil {
			return m.participate(ctx, current, definition), nil
		}
		return m.begin(ctx, definition, false)

	case persistence.PropagationSupports:
		if current != nil {
			return m.participate(ctx, current, definition), nil
		}
		return m.withoutTransaction(ctx, definition, false), nil

	case persistence.PropagationMandatory:
		if current == nil {
			return nil, m.txError(definition, "begin", errs.ErrNoExistingTransaction)
		}
		return m.participate(ctx, current, definition), nil

	case persistence.PropagationRequiresNew:
		return m.begin(ctx, definition, current != nil)

	case persistence.PropagationNotSupported:
		return m.withoutTransaction(ctx, definition, current != nil), nil

	case persistence.PropagationNever:
		if current != nil {
			return nil, m.txError(definition, "begin", errs.ErrExistingTransaction)
		}
		return m.withoutTransaction(ctx, definition, false), nil

	case persistence.PropagationNested:
		if current == nil {
			return m.begin(ctx, definition, false)
		}
		return m.nested(ctx, current, definition)
	}

	return nil, m.txError(definition, "begin", errs.ErrInvalidTransactionDefinition)
}

// Commit commits the scope. Participating scopes leave the decision to the
// scope that began the transaction.
func (m *TransactionManager) Commit(status persistence.TransactionStatus) error {
	s, err := m.ownStatus(status)
	if err != nil {
		return err
	}
	if !s.markCompleted() {
		return m.txError(s.definition, "commit", errs.ErrTransactionCompleted)
	}

	if s.isLocalRollbackOnly() {
		m.logger.Debug("Scope marked rollback-only, rolling back instead of commit", s.logFields())
		return m.processRollback(s, false)
	}

	if s.resource != nil && s.resource.isRollbackOnly() {
		rbErr := m.processRollback(s, s.newTx)
		if s.newTx {
			return errors.Join(
				m.txError(s.definition, "commit", fmt.Errorf("%w: transaction was marked rollback-only by a participant", errs.ErrUnexpectedRollback)),
				rbErr,
			)
		}
		return rbErr
	}

	return m.processCommit(s)
}

// Rollback rolls back the scope. A participating scope marks the whole
// transaction rollback-only.
func (m *TransactionManager) Rollback(status persistence.TransactionStatus) error {
	s, err := m.ownStatus(status)
	if err != nil {
		return err
	}
	if !s.markCompleted() {
		return m.txError(s.definition, "rollback", errs.ErrTransactionCompleted)
	}

	return m.processRollback(s, false)
}

// DBFromContext returns the transaction bound to ctx, or fallback when ctx
// carries no active transaction
func DBFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if status, ok := persistence.StatusFromContext(ctx); ok {
		if s, ok := status.(*transactionStatus); ok && s.resource != nil && !s.IsCompleted() {
			return s.resource.conn(ctx)
		}
	}
	return fallback.WithContext(ctx)
}

// CheckWritable refuses writes in read-only scopes
func CheckWritable(ctx context.Context) error {
	if persistence.IsReadOnlyContext(ctx) {
		return errs.ErrReadOnlyTransaction
	}
	return nil
}

// currentStatus returns the active scope of this manager bound to ctx
func (m *TransactionManager) currentStatus(ctx context.Context) *transactionStatus {
	status, ok := persistence.ActiveTransaction(ctx)
	if !ok {
		return nil
	}
	s, ok := status.(*transactionStatus)
	if !ok || s.manager != m {
		return nil
	}
	return s
}

func (m *TransactionManager) ownStatus(status persistence.TransactionStatus) (*transactionStatus, error) {
	s, ok := status.(*transactionStatus)
	if !ok || s == nil || s.manager != m {
		return nil, fmt.Errorf("%w: status was not created by this transaction manager", errs.ErrInvalidTransactionStatus)
	}
	return s, nil
}

// begin starts a physical transaction. The caller's context is kept as the
// parent and is what after-completion callbacks receive.
func (m *TransactionManager) begin(
	ctx context.Context,
	definition persistence.TransactionDefinition,
	suspends bool,
) (*transactionStatus, error) {
	txCtx, cancel := ctx, context.CancelFunc(func() {})
	if definition.Timeout > 0 {
		txCtx, cancel = m.timeProvider.WithTimeout(ctx, definition.Timeout)
	}

	opts := m.txOptions(definition)

	var tx *gorm.DB
	err := RetryOnTransientError(txCtx, m.retry, "begin transaction", func() error {
		tx = m.db.WithContext(txCtx).Begin(opts)
		return tx.Error
	}, m.logger)
	if err != nil {
		cancel()
		m.logger.Error("Failed to begin transaction", map[string]any{
			"transaction": definition.Name,
			"propagation": definition.Propagation.String(),
			"error":       err.Error(),
		})
		return nil, m.txError(definition, "begin",
			fmt.Errorf("failed to begin transaction: %w", m.errorMapper.MapError(err, "begin")))
	}

	s := &transactionStatus{
		manager:    m,
		parentCtx:  ctx,
		definition: definition,
		resource: &txResource{
			tx:        tx,
			readOnly:  definition.ReadOnly,
			startedAt: m.timeProvider.Now(),
			cancel:    cancel,
		},
		newTx:     true,
		suspended: suspends,
	}
	s.ctx = persistence.ContextWithStatus(txCtx, s)

	m.metrics.ObserveBegin(definition.Propagation.String())
	fields := s.logFields()
	fields["isolation"] = definition.Isolation.String()
	m.logger.Debug("Began transaction", fields)

	return s, nil
}

func (m *TransactionManager) participate(
	ctx context.Context,
	current *transactionStatus,
	definition persistence.TransactionDefinition,
) *transactionStatus {
	s := &transactionStatus{
		manager:    m,
		parentCtx:  ctx,
		definition: definition,
		resource:   current.resource,
	}
	s.ctx = persistence.ContextWithStatus(ctx, s)

	m.logger.Debug("Joined existing transaction", s.logFields())
	return s
}

func (m *TransactionManager) nested(
	ctx context.Context,
	current *transactionStatus,
	definition persistence.TransactionDefinition,
) (*transactionStatus, error) {
	resource := current.resource
	name := resource.nextSavepoint()

	if err := resource.conn(ctx).SavePoint(name).Error; err != nil {
		m.logger.Error("Failed to create savepoint", map[string]any{
			"transaction": definition.Name,
			"savepoint":   name,
			"error":       err.Error(),
		})
		return nil, m.txError(definition, "begin",
			fmt.Errorf("failed to create savepoint: %w", m.errorMapper.MapError(err, "savepoint")))
	}

	s := &transactionStatus{
		manager:    m,
		parentCtx:  ctx,
		definition: definition,
		resource:   resource,
		savepoint:  name,
	}
	s.ctx = persistence.ContextWithStatus(ctx, s)

	m.metrics.ObserveSavepoint(definition.Propagation.String())
	m.logger.Debug("Created savepoint", s.logFields())
	return s, nil
}

// withoutTransaction binds a scope with no resource, which hides any outer
// transaction from repositories until the scope completes
func (m *TransactionManager) withoutTransaction(
	ctx context.Context,
	definition persistence.TransactionDefinition,
	suspends bool,
) *transactionStatus {
	s := &transactionStatus{
		manager:    m,
		parentCtx:  ctx,
		definition: definition,
		suspended:  suspends,
	}
	s.ctx = persistence.ContextWithStatus(ctx, s)

	m.logger.Debug("Running without transaction", s.logFields())
	return s
}

func (m *TransactionManager) processCommit(s *transactionStatus) error {
	switch {
	case s.resource == nil:
		m.triggerAfterCompletion(s.parentCtx, s.takeSynchronizations(), persistence.CompletionCommitted)
		return nil

	case s.savepoint != "":
		if err := s.resource.conn(s.ctx).Exec("RELEASE SAVEPOINT " + s.savepoint).Error; err != nil {
			m.logger.Error("Failed to release savepoint", map[string]any{
				"transaction": s.definition.Name,
				"savepoint":   s.savepoint,
				"error":       err.Error(),
			})
			return m.txError(s.definition, "commit",
				fmt.Errorf("failed to release savepoint: %w", m.errorMapper.MapError(err, "release savepoint")))
		}
		m.logger.Debug("Released savepoint", s.logFields())
		return nil

	case !s.newTx:
		return nil
	}

	m.logger.Debug("Committing transaction", s.logFields())

	if err := s.resource.tx.Commit().Error; err != nil {
		if timeoutErr := s.ctx.Err(); timeoutErr != nil {
			m.logger.Warn("Transaction timed out before commit", map[string]any{
				"transaction": s.definition.Name,
				"timeout":     s.definition.Timeout.String(),
				"error":       err.Error(),
			})
			m.finishTransaction(s, OutcomeUnexpectedRollback, persistence.CompletionRolledBack)
			return m.txError(s.definition, "commit",
				fmt.Errorf("%w: transaction timed out: %v", errs.ErrUnexpectedRollback, timeoutErr))
		}

		m.logger.Error("Failed to commit transaction", map[string]any{
			"transaction": s.definition.Name,
			"error":       err.Error(),
		})
		_ = s.resource.tx.Rollback()
		m.finishTransaction(s, OutcomeFailed, persistence.CompletionUnknown)
		return m.txError(s.definition, "commit",
			fmt.Errorf("failed to commit transaction: %w", m.errorMapper.MapError(err, "commit")))
	}

	m.finishTransaction(s, OutcomeCommitted, persistence.CompletionCommitted)
	return nil
}

func (m *TransactionManager) processRollback(s *transactionStatus, unexpected bool) error {
	switch {
	case s.resource == nil:
		m.triggerAfterCompletion(s.parentCtx, s.takeSynchronizations(), persistence.CompletionRolledBack)
		return nil

	case s.savepoint != "":
		conn := s.resource.conn(s.parentCtx)
		if err := conn.RollbackTo(s.savepoint).Error; err != nil {
			m.logger.Error("Failed to roll back to savepoint", map[string]any{
				"transaction": s.definition.Name,
				"savepoint":   s.savepoint,
				"error":       err.Error(),
			})
			return m.txError(s.definition, "rollback",
				fmt.Errorf("failed to roll back to savepoint: %w", m.errorMapper.MapError(err, "rollback savepoint")))
		}
		if err := s.resource.conn(s.parentCtx).Exec("RELEASE SAVEPOINT " + s.savepoint).Error; err != nil {
			m.logger.Warn("Failed to release savepoint after rollback", map[string]any{
				"savepoint": s.savepoint,
				"error":     err.Error(),
			})
		}
		m.logger.Debug("Rolled back to savepoint", s.logFields())
		return nil

	case !s.newTx:
		s.resource.markRollbackOnly()
		m.logger.Debug("Marked transaction rollback-only", s.logFields())
		return nil
	}

	m.logger.Debug("Rolling back transaction", s.logFields())

	outcome := OutcomeRolledBack
	if unexpected {
		outcome = OutcomeUnexpectedRollback
	}

	err := s.resource.tx.Rollback().Error

	// A timed-out context makes database/sql roll the transaction back on its own
	if err != nil && errors.Is(err, sql.ErrTxDone) {
		m.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"transaction": s.definition.Name,
			"error":       err.Error(),
		})
		err = nil
	}

	m.finishTransaction(s, outcome, persistence.CompletionRolledBack)

	if err != nil {
		m.logger.Error("Failed to rollback transaction", map[string]any{
			"transaction": s.definition.Name,
			"error":       err.Error(),
		})
		return m.txError(s.definition, "rollback",
			fmt.Errorf("failed to rollback transaction: %w", m.errorMapper.MapError(err, "rollback")))
	}
	return nil
}

// finishTransaction releases the physical transaction and runs the
// callbacks registered by every scope that took part in it
func (m *TransactionManager) finishTransaction(s *transactionStatus, outcome string, completion persistence.CompletionStatus) {
	s.resource.cancel()
	m.metrics.ObserveCompletion(s.definition.Propagation.String(), outcome, m.timeProvider.Since(s.resource.startedAt))
	m.triggerAfterCompletion(s.parentCtx, s.resource.takeSynchronizations(), completion)
}

func (m *TransactionManager) triggerAfterCompletion(
	ctx context.Context,
	syncs []persistence.Synchronization,
	completion persistence.CompletionStatus,
) {
	for _, sync := range syncs {
		m.invokeAfterCompletion(ctx, sync, completion)
	}
}

func (m *TransactionManager) invokeAfterCompletion(
	ctx context.Context,
	sync persistence.Synchronization,
	completion persistence.CompletionStatus,
) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("After-completion callback panicked", map[string]any{
				"status": completion.String(),
				"panic":  fmt.Sprint(r),
			})
		}
	}()
	sync.AfterCompletion(ctx, completion)
}

// txOptions maps the definition onto driver options. Only postgres honors
// isolation and read-only; sqlite always runs serializable.
func (m *TransactionManager) txOptions(definition persistence.TransactionDefinition) *sql.TxOptions {
	if m.db.Dialector.Name() != DriverPostgres {
		return nil
	}

	opts := &sql.TxOptions{ReadOnly: definition.ReadOnly}
	switch definition.Isolation {
	case persistence.IsolationReadUncommitted:
		opts.Isolation = sql.LevelReadUncommitted
	case persistence.IsolationReadCommitted:
		opts.Isolation = sql.LevelReadCommitted
	case persistence.IsolationRepeatableRead:
		opts.Isolation = sql.LevelRepeatableRead
	case persistence.IsolationSerializable:
		opts.Isolation = sql.LevelSerializable
	default:
		opts.Isolation = sql.LevelDefault
	}
	return opts
}

func (m *TransactionManager) txError(definition persistence.TransactionDefinition, operation string, err error) error {
	return errs.NewTransactionError(definition.Name, operation, definition.Propagation.String(), err)
}
