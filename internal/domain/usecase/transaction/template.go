package transaction

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
)

// Callback is the unit of work run inside a transaction scope.
// It must use the context it receives, not the caller's.
type Callback func(ctx context.Context) error

// Execute runs fn inside a transaction scope obtained from tm.
// The scope is committed when fn returns nil and rolled back when fn returns
// an error or panics; panics are re-raised after the rollback.
func Execute(
	ctx context.Context,
	tm persistence.TransactionManager,
	definition persistence.TransactionDefinition,
	fn Callback,
) error {
	_, err := Query(ctx, tm, definition, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Query is Execute for callbacks that produce a value. The value is
// returned only when the scope commits.
func Query[T any](
	ctx context.Context,
	tm persistence.TransactionManager,
	definition persistence.TransactionDefinition,
	fn func(ctx context.Context) (T, error),
) (result T, err error) {
	var zero T

	status, err := tm.GetTransaction(ctx, definition)
	if err != nil {
		return zero, err
	}

	completed := false
	defer func() {
		if completed {
			return
		}
		if r := recover(); r != nil {
			_ = tm.Rollback(status)
			panic(r)
		}
	}()

	value, fnErr := fn(status.Context())
	if fnErr != nil {
		completed = true
		if rbErr := tm.Rollback(status); rbErr != nil {
			return zero, errors.Join(fnErr, rbErr)
		}
		return zero, fnErr
	}

	completed = true
	if err := tm.Commit(status); err != nil {
		return zero, err
	}

	return value, nil
}
