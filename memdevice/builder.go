package memdevice

import (
	"github.com/sarchlab/sdramctrl/sim"
	"github.com/sarchlab/sdramctrl/tristate"
)

// Builder can build memory devices.
type Builder struct {
	pins     CommandSource
	bus      *tristate.Bus
	capacity uint64
}

// MakeBuilder returns a new Builder with default parameters. The default
// capacity covers the 256 words the device can address.
func MakeBuilder() Builder {
	return Builder{
		capacity: 512,
	}
}

// WithCommandSource sets the controller pins the device observes.
func (b Builder) WithCommandSource(pins CommandSource) Builder {
	b.pins = pins
	return b
}

// WithBus sets the shared data bus the device drives during reads.
func (b Builder) WithBus(bus *tristate.Bus) Builder {
	b.bus = bus
	return b
}

// WithCapacity sets the storage capacity in bytes.
func (b Builder) WithCapacity(capacity uint64) Builder {
	b.capacity = capacity
	return b
}

// Build builds a memory device.
func (b Builder) Build(name string) *Comp {
	if b.pins == nil {
		panic("memory device requires a command source")
	}

	if b.bus == nil {
		panic("memory device requires a data bus")
	}

	return &Comp{
		ComponentBase: sim.NewComponentBase(name),
		pins:          b.pins,
		bus:           b.bus,
		storage:       NewStorage(b.capacity),
	}
}
