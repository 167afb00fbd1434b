package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
	"gorm.io/gorm"
)

// txResource is a physical transaction shared by every scope that joins it
type txResource struct {
	mu           sync.Mutex
	tx           *gorm.DB
	readOnly     bool
	rollbackOnly bool
	savepoints   int
	syncs        []persistence.Synchronization
	startedAt    time.Time
	cancel       context.CancelFunc
}

// conn returns the transaction bound to ctx for a single statement chain
func (r *txResource) conn(ctx context.Context) *gorm.DB {
	return r.tx.WithContext(ctx)
}

func (r *txResource) markRollbackOnly() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollbackOnly = true
}

func (r *txResource) isRollbackOnly() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rollbackOnly
}

func (r *txResource) nextSavepoint() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.savepoints++
	return fmt.Sprintf("ul_savepoint_%d", r.savepoints)
}

func (r *txResource) addSynchronization(sync persistence.Synchronization) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncs = append(r.syncs, sync)
}

func (r *txResource) takeSynchronizations() []persistence.Synchronization {
	r.mu.Lock()
	defer r.mu.Unlock()
	syncs := r.syncs
	r.syncs = nil
	return syncs
}

// transactionStatus is the scope handed out by TransactionManager.
// resource is nil for scopes that run without a transaction.
type transactionStatus struct {
	manager    *TransactionManager
	ctx        context.Context
	parentCtx  context.Context
	definition persistence.TransactionDefinition
	resource   *txResource
	newTx      bool
	savepoint  string
	suspended  bool

	mu           sync.Mutex
	rollbackOnly bool
	completed    bool
	syncs        []persistence.Synchronization
}

var _ persistence.TransactionStatus = (*transactionStatus)(nil)

func (s *transactionStatus) Context() context.Context {
	return s.ctx
}

func (s *transactionStatus) Definition() persistence.TransactionDefinition {
	return s.definition
}

func (s *transactionStatus) IsNewTransaction() bool {
	return s.newTx || s.savepoint != ""
}

func (s *transactionStatus) HasTransaction() bool {
	return s.resource != nil
}

// IsReadOnly is true when the scope asked for read-only or joined a read-only transaction
func (s *transactionStatus) IsReadOnly() bool {
	return s.definition.ReadOnly || (s.resource != nil && s.resource.readOnly)
}

func (s *transactionStatus) IsCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

func (s *transactionStatus) SetRollbackOnly() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollbackOnly = true
}

func (s *transactionStatus) IsRollbackOnly() bool {
	return s.isLocalRollbackOnly() || (s.resource != nil && s.resource.isRollbackOnly())
}

// RegisterSynchronization attaches sync to the physical transaction, or to the
// scope itself when it runs without one
func (s *transactionStatus) RegisterSynchronization(sync persistence.Synchronization) {
	if s.resource != nil {
		s.resource.addSynchronization(sync)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncs = append(s.syncs, sync)
}

func (s *transactionStatus) isLocalRollbackOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollbackOnly
}

// markCompleted returns false when the scope was already completed
func (s *transactionStatus) markCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return false
	}
	s.completed = true
	return true
}

func (s *transactionStatus) takeSynchronizations() []persistence.Synchronization {
	s.mu.Lock()
	defer s.mu.Unlock()
	syncs := s.syncs
	s.syncs = nil
	return syncs
}

func (s *transactionStatus) kind() string {
	switch {
	case s.resource == nil:
		return "none"
	case s.savepoint != "":
		return "savepoint"
	case s.newTx:
		return "new"
	default:
		return "participating"
	}
}

func (s *transactionStatus) logFields() map[string]any {
	fields := map[string]any{
		"transaction": s.definition.Name,
		"propagation": s.definition.Propagation.String(),
		"scope":       s.kind(),
		"read_only":   s.IsReadOnly(),
	}
	if s.savepoint != "" {
		fields["savepoint"] = s.savepoint
	}
	if s.suspended {
		fields["suspended_outer"] = true
	}
	return fields
}
