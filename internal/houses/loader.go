package houses

import (
	"context"
	"sync"

	"daysoflight/internal/model"
)

// Load is a single in-flight house fetch. It is issued once, never retried
// and never cancelled by the caller.
type Load struct {
	mu     sync.Mutex
	result Result
	done   chan struct{}
}

// Start issues f.Fetch in its own goroutine and returns immediately. The
// returned Load reports Loading until the fetch resolves.
func Start(ctx context.Context, f Fetcher) *Load {
	l := &Load{
		result: Loading(),
		done:   make(chan struct{}),
	}
	go l.run(ctx, f)
	return l
}

func (l *Load) run(ctx context.Context, f Fetcher) {
	defer close(l.done)

	var (
		items []model.House
		err   error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = ErrNetworkOrServer
			}
		}()
		items, err = f.Fetch(ctx)
	}()

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.result = Failure(err)
		return
	}
	l.result = Success(items)
}

// Result returns the current state of the fetch.
func (l *Load) Result() Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result
}

// Done is closed once the fetch has resolved.
func (l *Load) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the fetch resolves or ctx is done, then returns the
// current state. It never cancels the fetch itself.
func (l *Load) Wait(ctx context.Context) Result {
	select {
	case <-l.done:
	case <-ctx.Done():
	}
	return l.Result()
}
