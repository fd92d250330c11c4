package memory

import (
	"context"

	"tasklist/internal/domain/repositories"
)

type memoryTxKey struct{}

// transactionManager gives ExecTx all-or-nothing semantics by snapshotting
// the store and restoring it on failure. It holds the store's txMu for the
// whole call, and repository calls outside a transaction wait on the same
// lock, so the snapshot only ever covers the transaction's own writes.
type transactionManager struct {
	store *Store
}

// ExecTx runs fn and rolls every write back if fn fails or ctx is done
func (tm *transactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	if ctx.Value(memoryTxKey{}) != nil {
		return fn(ctx)
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snap := tm.store.snapshot()
	err := fn(context.WithValue(ctx, memoryTxKey{}, true))
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		tm.store.restore(snap)
		return err
	}
	return nil
}
