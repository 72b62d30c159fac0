package store

import (
	"fmt"

	"github.com/jackc/pgerrcode"
)

// classifyPgError maps a failed statement to the repository error callers
// match on. See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
//   - 23505 unique_violation → [ErrEmailAlreadyExists]
//   - 23503 foreign_key_violation → [ErrUserNotFound]
//   - class 08, 40 and 57P03 → [ErrTransient]
//
// Anything else is wrapped with base.
func classifyPgError(base, err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40: transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %w: %w", base, ErrTransient, err)
	}

	return fmt.Errorf("%w: %w", base, err)
}
