package clock

import (
	"github.com/sarchlab/sdramctrl/sim"
)

// Builder can build clock domains.
type Builder struct {
	engine     sim.Engine
	freq       sim.Freq
	cycleLimit uint64
}

// MakeBuilder returns a new Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq:       100 * sim.MHz,
		cycleLimit: 1000000,
	}
}

// WithEngine sets the engine that drives the domain.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the domain.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithCycleLimit sets the number of cycles after which the domain stops.
func (b Builder) WithCycleLimit(limit uint64) Builder {
	b.cycleLimit = limit
	return b
}

// Build builds a clock domain.
func (b Builder) Build(name string) *Domain {
	if b.engine == nil {
		panic("clock domain requires an engine")
	}

	d := new(Domain)
	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)
	d.cycleLimit = b.cycleLimit

	return d
}
