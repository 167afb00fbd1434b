package persistence

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
)

// Propagation decides how a requested transaction relates to one already bound to the context
type Propagation int

const (
	// PropagationRequired joins the current transaction or begins a new one
	PropagationRequired Propagation = iota
	// PropagationRequiresNew suspends the current transaction and begins an independent one
	PropagationRequiresNew
	// PropagationSupports joins the current transaction or runs without one
	PropagationSupports
	// PropagationMandatory joins the current transaction and fails without one
	PropagationMandatory
	// PropagationNotSupported suspends the current transaction and runs without one
	PropagationNotSupported
	// PropagationNever fails when a transaction is active and otherwise runs without one
	PropagationNever
	// PropagationNested runs inside a savepoint of the current transaction or begins a new one
	PropagationNested
)

// String returns the propagation name
func (p Propagation) String() string {
	switch p {
	case PropagationRequired:
		return "REQUIRED"
	case PropagationRequiresNew:
		return "REQUIRES_NEW"
	case PropagationSupports:
		return "SUPPORTS"
	case PropagationMandatory:
		return "MANDATORY"
	case PropagationNotSupported:
		return "NOT_SUPPORTED"
	case PropagationNever:
		return "NEVER"
	case PropagationNested:
		return "NESTED"
	default:
		return fmt.Sprintf("Propagation(%d)", int(p))
	}
}

// Isolation is the requested isolation level; IsolationDefault leaves the database default
type Isolation int

const (
	IsolationDefault Isolation = iota
	IsolationReadUncommitted
	IsolationReadCommitted
	IsolationRepeatableRead
	IsolationSerializable
)

// String returns the isolation name
func (i Isolation) String() string {
	switch i {
	case IsolationDefault:
		return "DEFAULT"
	case IsolationReadUncommitted:
		return "READ_UNCOMMITTED"
	case IsolationReadCommitted:
		return "READ_COMMITTED"
	case IsolationRepeatableRead:
		return "REPEATABLE_READ"
	case IsolationSerializable:
		return "SERIALIZABLE"
	default:
		return fmt.Sprintf("Isolation(%d)", int(i))
	}
}

// TransactionDefinition configures a transaction requested from a TransactionManager
type TransactionDefinition struct {
	Name        string
	Propagation Propagation
	Isolation   Isolation
	ReadOnly    bool
	Timeout     time.Duration // zero means no timeout
}

// DefaultDefinition returns a REQUIRED, read-write definition with the default isolation
func DefaultDefinition() TransactionDefinition {
	return TransactionDefinition{
		Propagation: PropagationRequired,
		Isolation:   IsolationDefault,
	}
}

// WithName returns a copy of the definition with the given name
func (d TransactionDefinition) WithName(name string) TransactionDefinition {
	d.Name = name
	return d
}

// WithPropagation returns a copy of the definition with the given propagation
func (d TransactionDefinition) WithPropagation(p Propagation) TransactionDefinition {
	d.Propagation = p
	return d
}

// WithIsolation returns a copy of the definition with the given isolation level
func (d TransactionDefinition) WithIsolation(i Isolation) TransactionDefinition {
	d.Isolation = i
	return d
}

// WithReadOnly returns a copy of the definition with the read-only flag set
func (d TransactionDefinition) WithReadOnly(readOnly bool) TransactionDefinition {
	d.ReadOnly = readOnly
	return d
}

// WithTimeout returns a copy of the definition with the given timeout
func (d TransactionDefinition) WithTimeout(timeout time.Duration) TransactionDefinition {
	d.Timeout = timeout
	return d
}

// Validate checks that the definition can be honored
func (d TransactionDefinition) Validate() error {
	if d.Propagation < PropagationRequired || d.Propagation > PropagationNested {
		return fmt.Errorf("%w: unknown propagation %d", errs.ErrInvalidTransactionDefinition, int(d.Propagation))
	}
	if d.Isolation < IsolationDefault || d.Isolation > IsolationSerializable {
		return fmt.Errorf("%w: unknown isolation %d", errs.ErrInvalidTransactionDefinition, int(d.Isolation))
	}
	if d.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", errs.ErrInvalidTransactionDefinition, d.Timeout)
	}
	return nil
}

// CompletionStatus reports how a transaction ended
type CompletionStatus int

const (
	CompletionCommitted CompletionStatus = iota
	CompletionRolledBack
	CompletionUnknown
)

// String returns the completion status name
func (s CompletionStatus) String() string {
	switch s {
	case CompletionCommitted:
		return "COMMITTED"
	case CompletionRolledBack:
		return "ROLLED_BACK"
	default:
		return "UNKNOWN"
	}
}

// Synchronization is a callback invoked after the physical transaction completes
type Synchronization interface {
	AfterCompletion(ctx context.Context, status CompletionStatus)
}

// SynchronizationFunc adapts a function to the Synchronization interface
type SynchronizationFunc func(ctx context.Context, status CompletionStatus)

// AfterCompletion calls f(ctx, status)
func (f SynchronizationFunc) AfterCompletion(ctx context.Context, status CompletionStatus) {
	f(ctx, status)
}

// TransactionStatus is the handle of an in-flight transaction scope
type TransactionStatus interface {
	// Context returns the context bound to this scope; pass it to repositories
	Context() context.Context
	// Definition returns the definition the scope was created with
	Definition() TransactionDefinition
	// IsNewTransaction reports whether this scope began the physical transaction or savepoint
	IsNewTransaction() bool
	// HasTransaction reports whether a physical transaction backs this scope
	HasTransaction() bool
	// IsReadOnly reports whether writes are refused in this scope
	IsReadOnly() bool
	// IsCompleted reports whether Commit or Rollback already ran
	IsCompleted() bool
	// SetRollbackOnly marks the scope so that a commit rolls back instead
	SetRollbackOnly()
	// IsRollbackOnly reports whether the scope or its transaction is marked rollback-only
	IsRollbackOnly() bool
	// RegisterSynchronization adds a callback run after the physical transaction completes
	RegisterSynchronization(sync Synchronization)
}

// TransactionManager begins, commits and rolls back transactions
type TransactionManager interface {
	// GetTransaction returns a status for the definition, joining, suspending or
	// beginning a transaction according to its propagation
	//
	// Possible errors:
	// - ErrNoExistingTransaction: MANDATORY without an active transaction
	// - ErrExistingTransaction: NEVER with an active transaction
	// - ErrInvalidTransactionDefinition: definition fails validation
	GetTransaction(ctx context.Context, definition TransactionDefinition) (TransactionStatus, error)

	// Commit commits the scope; a rollback-only scope is rolled back instead
	//
	// Possible errors:
	// - ErrTransactionCompleted: status already committed or rolled back
	// - ErrUnexpectedRollback: a participant marked the transaction rollback-only
	Commit(status TransactionStatus) error

	// Rollback rolls back the scope; a participating scope marks its transaction rollback-only
	//
	// Possible errors:
	// - ErrTransactionCompleted: status already committed or rolled back
	Rollback(status TransactionStatus) error
}

type statusContextKey struct{}

// ContextWithStatus binds a status to the context
func ContextWithStatus(ctx context.Context, status TransactionStatus) context.Context {
	return context.WithValue(ctx, statusContextKey{}, status)
}

// StatusFromContext returns the innermost status bound to the context
func StatusFromContext(ctx context.Context) (TransactionStatus, bool) {
	status, ok := ctx.Value(statusContextKey{}).(TransactionStatus)
	return status, ok && status != nil
}

// ActiveTransaction returns the status of the transaction currently bound to ctx.
// Suspended, completed and non-transactional scopes do not count.
func ActiveTransaction(ctx context.Context) (TransactionStatus, bool) {
	status, ok := StatusFromContext(ctx)
	if !ok || !status.HasTransaction() || status.IsCompleted() {
		return nil, false
	}
	return status, true
}

// RegisterSynchronization registers sync on the scope bound to ctx.
// It returns false when no scope is bound, in which case the caller should act immediately.
func RegisterSynchronization(ctx context.Context, sync Synchronization) bool {
	status, ok := StatusFromContext(ctx)
	if !ok || status.IsCompleted() {
		return false
	}
	status.RegisterSynchronization(sync)
	return true
}

// IsReadOnlyContext reports whether ctx is bound to a read-only scope
func IsReadOnlyContext(ctx context.Context) bool {
	status, ok := StatusFromContext(ctx)
	return ok && !status.IsCompleted() && status.IsReadOnly()
}
