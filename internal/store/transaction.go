package store

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type txKey struct{}

// Tx is a database transaction carried by a context.
type Tx struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// FromContext returns the transaction handle of ctx, or nil outside a transaction.
func FromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*Tx); ok && tx != nil {
		return tx.db
	}
	return nil
}

// Commit ends the transaction of ctx. A context without one is returned as is.
func Commit(ctx context.Context) (context.Context, error) {
	return finish(ctx, true)
}

// Rollback aborts the transaction of ctx. A context without one is returned as is.
func Rollback(ctx context.Context) (context.Context, error) {
	return finish(ctx, false)
}

// InTransaction runs fn in a transaction of s, committing when fn succeeds
// and rolling back otherwise. Inside an existing transaction fn joins it and
// the outer owner decides the outcome.
func InTransaction(ctx context.Context, s Store, fn func(ctx context.Context) error) error {
	if FromContext(ctx) != nil {
		return fn(ctx)
	}
	txCtx, err := s.NewTransactionContext(ctx)
	if err != nil {
		return err
	}
	if err := fn(txCtx); err != nil {
		if _, rerr := Rollback(txCtx); rerr != nil {
			zap.S().Named("store").Warnf("rollback failed: %v", rerr)
		}
		return err
	}
	_, err = Commit(txCtx)
	return err
}

func newTransactionContext(ctx context.Context, db *gorm.DB, log *zap.SugaredLogger) (context.Context, error) {
	if FromContext(ctx) != nil {
		return ctx, nil // nested calls join the outer transaction
	}

	tx := db.Session(&gorm.Session{Context: ctx}).Begin()
	if tx.Error != nil {
		return ctx, tx.Error
	}
	log.Debug("transaction started")
	return context.WithValue(ctx, txKey{}, &Tx{db: tx, log: log}), nil
}

func finish(ctx context.Context, commit bool) (context.Context, error) {
	tx, ok := ctx.Value(txKey{}).(*Tx)
	if !ok || tx == nil {
		return ctx, nil
	}
	newCtx := context.WithValue(ctx, txKey{}, (*Tx)(nil))

	if tx.db == nil {
		return newCtx, ErrNoTransaction
	}
	var (
		op  string
		res *gorm.DB
	)
	if commit {
		op, res = "commit", tx.db.Commit()
	} else {
		op, res = "rollback", tx.db.Rollback()
	}
	tx.db = nil
	if res.Error != nil {
		tx.log.Errorf("transaction %s failed: %v", op, res.Error)
		return newCtx, res.Error
	}
	tx.log.Debugf("transaction %s done", op)
	return newCtx, nil
}
