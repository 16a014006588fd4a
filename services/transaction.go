package services

import (
	"context"

	"github.com/olegamobile/lets-play/repositories"
)

// WithTransactionResult executes fn within a database transaction and returns its value.
// The transaction travels in the context handed to fn, so repositories called
// with that context join it. Commits on success, rolls back on error.
// Errors returned by fn pass through unchanged; begin/commit failures become ErrTransactionFailed.
// The zero value is returned whenever the transaction does not commit.
func WithTransactionResult[T any](ctx context.Context, txMgr repositories.TransactionManager, fn func(ctx context.Context, tx repositories.Transaction) (T, error)) (T, error) {
	var (
		zero   T
		result T
		fnErr  error
	)

	err := txMgr.InTransaction(ctx, func(txCtx context.Context, tx repositories.Transaction) error {
		result, fnErr = fn(txCtx, tx)
		return fnErr
	})
	if err != nil {
		if fnErr != nil {
			return zero, fnErr
		}
		return zero, NewDomainError(ErrorTypeInternal, ErrTransactionFailed.Message, err)
	}

	return result, nil
}
