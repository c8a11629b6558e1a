package listing

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_RunsOnlyLast(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var last atomic.Int64
	var runs atomic.Int32
	for i := int64(1); i <= 5; i++ {
		d.Do(func() {
			runs.Add(1)
			last.Store(i)
		})
		time.Sleep(2 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, int64(5), last.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var runs atomic.Int32
	d.Do(func() { runs.Add(1) })
	assert.True(t, d.Pending())

	d.Cancel()
	assert.False(t, d.Pending())

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestDebouncer_SeparateBurstsBothRun(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var runs atomic.Int32
	d.Do(func() { runs.Add(1) })
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 2*time.Millisecond)

	d.Do(func() { runs.Add(1) })
	require.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 2*time.Millisecond)
}
