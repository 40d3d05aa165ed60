package sdram

import (
	"github.com/sarchlab/sdramctrl/sim"
	"github.com/sarchlab/sdramctrl/tristate"
)

// Builder can build SDRAM controllers.
type Builder struct {
	bus *tristate.Bus
}

// MakeBuilder returns a new Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithBus sets the shared data bus the controller samples during reads.
func (b Builder) WithBus(bus *tristate.Bus) Builder {
	b.bus = bus
	return b
}

// Build builds a controller in its reset configuration.
func (b Builder) Build(name string) *Comp {
	if b.bus == nil {
		panic("sdram controller requires a data bus")
	}

	c := &Comp{
		ComponentBase: sim.NewComponentBase(name),
		bus:           b.bus,
	}
	c.reset()

	return c
}
