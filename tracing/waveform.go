package tracing

import (
	"sync"

	"github.com/sarchlab/sdramctrl/sim"
)

// A WaveformBuffer is a hook that keeps the most recent signal samples in
// memory, for live inspection through the monitoring API.
type WaveformBuffer struct {
	lock     sync.Mutex
	capacity int
	samples  []SignalSample
}

// NewWaveformBuffer creates a buffer that retains up to capacity samples.
func NewWaveformBuffer(capacity int) *WaveformBuffer {
	if capacity <= 0 {
		panic("waveform buffer capacity must be positive")
	}

	return &WaveformBuffer{capacity: capacity}
}

// Func appends the sample carried by a signal-sample hook invocation,
// evicting the oldest sample when the buffer is full.
func (b *WaveformBuffer) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosSignalSample {
		return
	}

	sample, ok := ctx.Item.(SignalSample)
	if !ok {
		return
	}

	b.lock.Lock()
	defer b.lock.Unlock()

	if len(b.samples) == b.capacity {
		copy(b.samples, b.samples[1:])
		b.samples = b.samples[:b.capacity-1]
	}

	b.samples = append(b.samples, sample)
}

// Samples returns a copy of the retained samples, oldest first.
func (b *WaveformBuffer) Samples() []SignalSample {
	b.lock.Lock()
	defer b.lock.Unlock()

	out := make([]SignalSample, len(b.samples))
	copy(out, b.samples)

	return out
}
