package subscriptions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	reqs    []Request
	err     error
	calls   int
	started chan struct{}
	release chan struct{}
}

func (f *fakeSource) ListByUser(ctx context.Context, userID string) ([]Request, error) {
	f.calls++
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.reqs, f.err
}

func TestLoaderCachesAfterFirstLoad(t *testing.T) {
	src := &fakeSource{reqs: []Request{{ID: "r1", UserID: "u1", Status: StatusApproved}}}
	l := NewLoader(src)

	reqs, err := l.Ensure(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	_, err = l.Ensure(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls, "second Ensure must hit the cache")
}

func TestLoaderRejectsDuplicateInFlightLoad(t *testing.T) {
	src := &fakeSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	l := NewLoader(src)

	done := make(chan error, 1)
	go func() {
		_, err := l.Ensure(context.Background(), "u1")
		done <- err
	}()

	<-src.started
	_, err := l.Ensure(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrStillChecking)

	close(src.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, src.calls)
}

func TestLoaderRetriesAfterFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("db down")}
	l := NewLoader(src)

	_, err := l.Ensure(context.Background(), "u1")
	require.Error(t, err)

	src.err = nil
	src.reqs = []Request{{ID: "r1"}}
	reqs, err := l.Ensure(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
	assert.Equal(t, 2, src.calls)
}

func TestLoaderInvalidate(t *testing.T) {
	src := &fakeSource{}
	l := NewLoader(src)

	_, err := l.Ensure(context.Background(), "u1")
	require.NoError(t, err)
	l.Invalidate("u1")
	_, err = l.Ensure(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}
