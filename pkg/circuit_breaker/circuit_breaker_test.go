package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(clock *fakeClock) *circuitBreaker {
	cb := New(Config{
		RecordLength:     4,
		Timeout:          time.Minute,
		Percentile:       0.5,
		RecoveryRequests: 2,
	}).(*circuitBreaker)
	cb.now = clock.now
	return cb
}

var errService = errors.New("service error")

func ok() error      { return nil }
func failing() error { return errService }

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := newTestBreaker(clock)

	require.NoError(t, cb.Call(ok))
	require.ErrorIs(t, cb.Call(failing), errService)
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(failing), errService)
	require.Equal(t, Open, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrOpenCB)
	require.False(t, called)

	clock.advance(2 * time.Minute)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := newTestBreaker(clock)

	for i := 0; i < 2; i++ {
		_ = cb.Call(failing)
	}
	require.Equal(t, Open, cb.State())

	clock.advance(2 * time.Minute)
	require.ErrorIs(t, cb.Call(failing), errService)
	require.Equal(t, Open, cb.State())

	require.ErrorIs(t, cb.Call(ok), ErrOpenCB)

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(ok))
}
