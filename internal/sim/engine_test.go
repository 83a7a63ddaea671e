package sim

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRunsAndStops(t *testing.T) {
	eng := NewEngine()
	eng.Interval = time.Millisecond

	var steps atomic.Uint64
	eng.OnStep = func(step uint64) {
		steps.Store(step)
		if step >= 5 {
			eng.Stop()
		}
	}

	done := make(chan struct{})
	go func() {
		eng.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}

	assert.False(t, eng.Running())
	assert.GreaterOrEqual(t, steps.Load(), uint64(5))
}

func TestEngineDayCallbackCadence(t *testing.T) {
	eng := NewEngine()
	eng.Interval = 0

	var days atomic.Uint64
	eng.OnDay = func(step uint64) {
		days.Add(1)
	}
	eng.OnStep = func(step uint64) {
		if step >= StepsPerDay*2 {
			eng.Stop()
		}
	}

	done := make(chan struct{})
	go func() {
		eng.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}

	require.Equal(t, uint64(StepsPerDay*2), eng.Step())
	assert.Equal(t, uint64(2), days.Load())
}

func TestEngineStepCounterStartsAtZero(t *testing.T) {
	eng := NewEngine()
	assert.Equal(t, uint64(0), eng.Step())
	assert.False(t, eng.Running())
}
