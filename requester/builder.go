package requester

import (
	"github.com/sarchlab/sdramctrl/sim"
)

// Builder can build requesters.
type Builder struct {
	ctrl        Controller
	script      []Request
	resetCycles int
}

// MakeBuilder returns a new Builder. By default the requester holds reset
// for one cycle before issuing its first request.
func MakeBuilder() Builder {
	return Builder{
		resetCycles: 1,
	}
}

// WithController sets the controller the requester drives.
func (b Builder) WithController(ctrl Controller) Builder {
	b.ctrl = ctrl
	return b
}

// WithScript sets the requests to issue, in order.
func (b Builder) WithScript(script []Request) Builder {
	b.script = script
	return b
}

// WithResetCycles sets for how many cycles reset is asserted before the
// script starts.
func (b Builder) WithResetCycles(n int) Builder {
	b.resetCycles = n
	return b
}

// Build builds a requester.
func (b Builder) Build(name string) *Comp {
	if b.ctrl == nil {
		panic("requester requires a controller")
	}

	return &Comp{
		ComponentBase:  sim.NewComponentBase(name),
		ctrl:           b.ctrl,
		script:         b.script,
		resetRemaining: b.resetCycles,
	}
}
