package dispose_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RuiAAPeres/Receiver/dispose"
)

func TestDisposable_Dispose(t *testing.T) {
	t.Parallel()

	t.Run("runs the action exactly once", func(t *testing.T) {
		t.Parallel()

		var calls int
		d := dispose.New(func() { calls++ })

		d.Dispose()
		d.Dispose()
		d.Dispose()

		assert.Equal(t, 1, calls)
	})

	t.Run("is safe under concurrent disposal", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		d := dispose.New(func() { calls.Add(1) })

		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				d.Dispose()
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("tolerates a nil action", func(t *testing.T) {
		t.Parallel()

		d := dispose.New(nil)
		require.NotPanics(t, d.Dispose)
	})
}

func TestBag(t *testing.T) {
	t.Parallel()

	t.Run("disposes every held disposable exactly once", func(t *testing.T) {
		t.Parallel()

		bag := dispose.NewBag()

		counts := make([]int, 5)
		for i := range counts {
			dispose.New(func() { counts[i]++ }).DisposedBy(bag)
		}

		bag.Dispose()
		bag.Dispose()

		for i, n := range counts {
			assert.Equalf(t, 1, n, "disposable %d", i)
		}
	})

	t.Run("add after teardown disposes immediately", func(t *testing.T) {
		t.Parallel()

		bag := dispose.NewBag()
		bag.Dispose()

		var called bool
		bag.Add(dispose.New(func() { called = true }))

		assert.True(t, called)
	})

	t.Run("teardown is synchronous", func(t *testing.T) {
		t.Parallel()

		bag := dispose.NewBag()

		var done bool
		dispose.New(func() { done = true }).DisposedBy(bag)

		bag.Dispose()
		assert.True(t, done)
	})

	t.Run("handles concurrent adds and teardown", func(t *testing.T) {
		t.Parallel()

		bag := dispose.NewBag()

		const adders = 8
		var calls atomic.Int64

		var wg sync.WaitGroup
		for range adders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					bag.Add(dispose.New(func() { calls.Add(1) }))
				}
			}()
		}
		wg.Wait()
		bag.Dispose()

		// Every disposable added, before or after teardown, runs exactly once.
		assert.Equal(t, int64(adders*100), calls.Load())
	})
}
