package database

import (
	"context"
	"sync"
)

// Transactor runs fn so that every repository call made with txCtx commits or rolls back together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

type commitHooksKey struct{}

type commitHooks struct {
	mu  sync.Mutex
	fns []func(context.Context)
}

// TrackCommit returns a context that collects AfterCommit callbacks and a function that runs
// them. Transactors call run only once the transaction has committed; on rollback the
// callbacks are dropped.
func TrackCommit(ctx context.Context) (txCtx context.Context, run func(ctx context.Context)) {
	hooks := &commitHooks{}
	run = func(ctx context.Context) {
		hooks.mu.Lock()
		fns := hooks.fns
		hooks.fns = nil
		hooks.mu.Unlock()
		for _, fn := range fns {
			fn(ctx)
		}
	}
	return context.WithValue(ctx, commitHooksKey{}, hooks), run
}

// AfterCommit defers fn until the transaction carried by ctx commits. Outside a transaction
// fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks)
	if !ok {
		fn(ctx)
		return
	}
	hooks.mu.Lock()
	hooks.fns = append(hooks.fns, fn)
	hooks.mu.Unlock()
}

// InTransaction reports whether ctx belongs to an open transaction.
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(commitHooksKey{}).(*commitHooks)
	return ok
}
