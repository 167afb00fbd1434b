package user

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/usecase/transaction"
)

// TransactionalUserUseCase wraps a UserUseCase so that every call runs in a
// transaction scope. Reads join or open a read-only scope, writes a read-write one.
type TransactionalUserUseCase struct {
	target         usecase.UserUseCase
	txManager      persistence.TransactionManager
	logger         coreport.Logger
	upgradeTimeout time.Duration
}

// TransactionalOption configures a TransactionalUserUseCase
type TransactionalOption func(*TransactionalUserUseCase)

// WithUpgradeTimeout bounds the transaction of an UpgradeLevels run; zero means no bound
func WithUpgradeTimeout(timeout time.Duration) TransactionalOption {
	return func(t *TransactionalUserUseCase) {
		t.upgradeTimeout = timeout
	}
}

var _ usecase.UserUseCase = (*TransactionalUserUseCase)(nil)

// NewTransactionalUserUseCase creates the transactional decorator
func NewTransactionalUserUseCase(
	target usecase.UserUseCase,
	txManager persistence.TransactionManager,
	logger coreport.Logger,
	opts ...TransactionalOption,
) *TransactionalUserUseCase {
	t := &TransactionalUserUseCase{
		target:    target,
		txManager: txManager,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func readDefinition(name string) persistence.TransactionDefinition {
	return persistence.DefaultDefinition().WithName(name).WithReadOnly(true)
}

func writeDefinition(name string) persistence.TransactionDefinition {
	return persistence.DefaultDefinition().WithName(name)
}

// Add runs Add in a read-write transaction
func (t *TransactionalUserUseCase) Add(ctx context.Context, user *entity.User) error {
	return transaction.Execute(ctx, t.txManager, writeDefinition("UserUseCase.Add"), func(ctx context.Context) error {
		return t.target.Add(ctx, user)
	})
}

// Get runs Get in a read-only transaction
func (t *TransactionalUserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	return transaction.Query(ctx, t.txManager, readDefinition("UserUseCase.Get"), func(ctx context.Context) (*entity.User, error) {
		return t.target.Get(ctx, id)
	})
}

// GetAll runs GetAll in a read-only transaction
func (t *TransactionalUserUseCase) GetAll(ctx context.Context) ([]*entity.User, error) {
	return transaction.Query(ctx, t.txManager, readDefinition("UserUseCase.GetAll"), t.target.GetAll)
}

// Update runs Update in a read-write transaction
func (t *TransactionalUserUseCase) Update(ctx context.Context, user *entity.User) error {
	return transaction.Execute(ctx, t.txManager, writeDefinition("UserUseCase.Update"), func(ctx context.Context) error {
		return t.target.Update(ctx, user)
	})
}

// DeleteAll runs DeleteAll in a read-write transaction
func (t *TransactionalUserUseCase) DeleteAll(ctx context.Context) error {
	return transaction.Execute(ctx, t.txManager, writeDefinition("UserUseCase.DeleteAll"), t.target.DeleteAll)
}

// GetCount runs GetCount in a read-only transaction
func (t *TransactionalUserUseCase) GetCount(ctx context.Context) (int, error) {
	return transaction.Query(ctx, t.txManager, readDefinition("UserUseCase.GetCount"), t.target.GetCount)
}

// UpgradeLevels runs the whole upgrade batch in one read-write transaction,
// so a failure on any user leaves every level unchanged
func (t *TransactionalUserUseCase) UpgradeLevels(ctx context.Context) (*usecase.UpgradeResult, error) {
	definition := writeDefinition("UserUseCase.UpgradeLevels").WithTimeout(t.upgradeTimeout)
	result, err := transaction.Query(ctx, t.txManager, definition, t.target.UpgradeLevels)
	if err != nil {
		t.logger.Warn("Level upgrade rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return result, nil
}
