package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidUserData      = 4001
	CodeInvalidLevel         = 4002
	CodeInvalidUserID        = 4003
	CodeDuplicateUser        = 4004
	CodeConstraintViolation  = 4005
	CodeCannotUpgradeLevel   = 4006
	CodeReadOnlyTransaction  = 4007
	CodeLevelDowngrade       = 4008
	CodeUserNotFound         = 4040
	CodeTransactionConflict  = 4090
	CodeUnexpectedRollback   = 4091
	CodeIllegalTransactionOp = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidUserData is returned when user fields fail validation
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrInvalidLevel is returned when a level value is outside BASIC..GOLD
	ErrInvalidLevel = errors.New("invalid level")

	// ErrCannotUpgradeLevel is returned when upgrading a user that is already at the top level
	ErrCannotUpgradeLevel = errors.New("level cannot be upgraded")

	// ErrLevelDowngrade is returned when an update would move a user to a lower level
	ErrLevelDowngrade = errors.New("level cannot be lowered")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrTransactionConflict is returned on deadlocks and serialization failures
	ErrTransactionConflict = errors.New("transaction conflict")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// Transaction management errors
var (
	// ErrNoExistingTransaction is returned for MANDATORY propagation without an active transaction
	ErrNoExistingTransaction = errors.New("no existing transaction found for propagation 'mandatory'")

	// ErrExistingTransaction is returned for NEVER propagation inside an active transaction
	ErrExistingTransaction = errors.New("existing transaction found for propagation 'never'")

	// ErrTransactionCompleted is returned when committing or rolling back a finished transaction
	ErrTransactionCompleted = errors.New("transaction is already completed - do not call commit or rollback more than once per transaction")

	// ErrUnexpectedRollback is returned when a commit turns into a rollback because a
	// participating scope marked the transaction rollback-only
	ErrUnexpectedRollback = errors.New("transaction rolled back because it has been marked as rollback-only")

	// ErrReadOnlyTransaction is returned for writes attempted inside a read-only transaction
	ErrReadOnlyTransaction = errors.New("write operation attempted in a read-only transaction")

	// ErrInvalidTransactionDefinition is returned for unknown propagation or negative timeouts
	ErrInvalidTransactionDefinition = errors.New("invalid transaction definition")

	// ErrInvalidTransactionStatus is returned when a status was not created by the manager in use
	ErrInvalidTransactionStatus = errors.New("transaction status was not created by this manager")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidUserData):
		return CodeInvalidUserData
	case errors.Is(err, ErrInvalidLevel):
		return CodeInvalidLevel
	case errors.Is(err, ErrCannotUpgradeLevel):
		return CodeCannotUpgradeLevel
	case errors.Is(err, ErrLevelDowngrade):
		return CodeLevelDowngrade
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrReadOnlyTransaction):
		return CodeReadOnlyTransaction
	case errors.Is(err, ErrTransactionConflict):
		return CodeTransactionConflict
	case errors.Is(err, ErrUnexpectedRollback):
		return CodeUnexpectedRollback
	case errors.Is(err, ErrNoExistingTransaction),
		errors.Is(err, ErrExistingTransaction),
		errors.Is(err, ErrTransactionCompleted),
		errors.Is(err, ErrInvalidTransactionDefinition),
		errors.Is(err, ErrInvalidTransactionStatus):
		return CodeIllegalTransactionOp
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// UpgradeError represents a failure while upgrading a single user's level
type UpgradeError struct {
	UserID    string
	FromLevel string
	Err       error
}

// Error implements the error interface for UpgradeError
func (e *UpgradeError) Error() string {
	return fmt.Sprintf("level upgrade failed for user %s (level: %s): %v", e.UserID, e.FromLevel, e.Err)
}

// Unwrap returns the underlying error
func (e *UpgradeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *UpgradeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "upgrade_error",
		"user_id":    e.UserID,
		"from_level": e.FromLevel,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewUpgradeError creates a detailed upgrade error
func NewUpgradeError(userID, fromLevel string, err error) error {
	return &UpgradeError{
		UserID:    userID,
		FromLevel: fromLevel,
		Err:       err,
	}
}

// TransactionError represents a failure of a transaction manager operation
type TransactionError struct {
	Name        string
	Operation   string
	Propagation string
	Err         error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("transaction %s failed on %s (propagation: %s): %v", name, e.Operation, e.Propagation, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "transaction_error",
		"name":        e.Name,
		"operation":   e.Operation,
		"propagation": e.Propagation,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(name, operation, propagation string, err error) error {
	return &TransactionError{
		Name:        name,
		Operation:   operation,
		Propagation: propagation,
		Err:         err,
	}
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsDuplicateUserError checks if the error is a duplicate user error
func IsDuplicateUserError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error was caused by invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidUserData) ||
		errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsTransactionStateError checks if the error reports a misuse of the transaction manager
func IsTransactionStateError(err error) bool {
	return errors.Is(err, ErrNoExistingTransaction) ||
		errors.Is(err, ErrExistingTransaction) ||
		errors.Is(err, ErrTransactionCompleted) ||
		errors.Is(err, ErrInvalidTransactionDefinition) ||
		errors.Is(err, ErrInvalidTransactionStatus)
}
