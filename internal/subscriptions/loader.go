package subscriptions

import (
	"context"
	"errors"
	"sync"
)

// ErrStillChecking is returned when another load for the same user is already
// in flight. Callers surface a "please wait" state instead of retrying.
var ErrStillChecking = errors.New("subscription check already in progress")

type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateLoaded
	stateFailed
)

type Source interface {
	ListByUser(ctx context.Context, userID string) ([]Request, error)
}

// Loader caches subscription requests per user and guards the fetch so at
// most one load per user is in flight. Loads are idempotent reads, so a
// failed load simply goes back to idle and the next caller retries.
type Loader struct {
	src Source

	mu      sync.Mutex
	entries map[string]*loaderEntry
}

type loaderEntry struct {
	state loadState
	reqs  []Request
}

func NewLoader(src Source) *Loader {
	return &Loader{src: src, entries: make(map[string]*loaderEntry)}
}

// Ensure returns the cached requests for the user, loading them first if
// needed. A concurrent second call while a load is in flight returns
// ErrStillChecking rather than issuing a duplicate load.
func (l *Loader) Ensure(ctx context.Context, userID string) ([]Request, error) {
	l.mu.Lock()
	e, ok := l.entries[userID]
	if !ok {
		e = &loaderEntry{}
		l.entries[userID] = e
	}
	switch e.state {
	case stateLoaded:
		reqs := e.reqs
		l.mu.Unlock()
		return reqs, nil
	case stateLoading:
		l.mu.Unlock()
		return nil, ErrStillChecking
	}
	e.state = stateLoading
	l.mu.Unlock()

	reqs, err := l.src.ListByUser(ctx, userID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		e.state = stateFailed
		return nil, err
	}
	e.state = stateLoaded
	e.reqs = reqs
	return reqs, nil
}

// Invalidate drops the cached requests so the next Ensure reloads, e.g.
// after a request is approved.
func (l *Loader) Invalidate(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, userID)
}
