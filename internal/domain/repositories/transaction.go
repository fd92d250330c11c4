package repositories

import "context"

// TxFn is a unit of work. Repository calls made with the ctx it receives
// join the enclosing transaction.
type TxFn func(ctx context.Context) error

// TransactionManager is implemented by both entity stores. Services use it
// for read-modify-write item updates and for seeding, where a failure must
// leave no partial lists or items behind.
//
// ExecTx keeps fn's writes only when fn returns nil and ctx is still live.
// A nested call reuses the outer transaction.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
