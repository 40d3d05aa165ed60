// Package clock provides a synchronous clock domain on top of the
// discrete-event engine. One engine tick of a Domain is one clock cycle: all
// elements first settle their combinational logic, then all elements update
// their registers on the clock edge.
package clock

import (
	"github.com/sarchlab/sdramctrl/sim"
)

// An Element is a piece of synchronous hardware that lives in a clock
// domain.
//
// Evaluate settles the combinational logic of the element from the current
// register values and input pins. ClockEdge applies the synchronous register
// update. Within one cycle the domain calls Evaluate on every element, in
// registration order, before calling ClockEdge on any of them.
type Element interface {
	Evaluate()
	ClockEdge()
}

// A Finisher is an element that knows when it has no more work to do.
// A domain with at least one Finisher stops once all of them are finished.
type Finisher interface {
	Finished() bool
}

// HookPosCycleEnd is triggered on the domain after every completed cycle.
// The hook item is the cycle index that just completed.
var HookPosCycleEnd = &sim.HookPos{Name: "Cycle End"}

// A Domain drives a set of synchronous elements with a shared clock.
type Domain struct {
	*sim.TickingComponent

	elements   []Element
	finishers  []Finisher
	cycle      uint64
	cycleLimit uint64
}

// AddElement registers an element with the domain. Elements are evaluated in
// registration order, which callers use to model signal flow within a cycle.
func (d *Domain) AddElement(e Element) {
	d.elements = append(d.elements, e)

	if f, ok := e.(Finisher); ok {
		d.finishers = append(d.finishers, f)
	}
}

// Cycle returns the number of completed clock cycles.
func (d *Domain) Cycle() uint64 {
	return d.cycle
}

// CycleLimit returns the maximum number of cycles the domain runs.
func (d *Domain) CycleLimit() uint64 {
	return d.cycleLimit
}

// Tick runs one clock cycle.
func (d *Domain) Tick() bool {
	if d.cycle >= d.cycleLimit {
		return false
	}

	if d.allFinished() {
		return false
	}

	for _, e := range d.elements {
		e.Evaluate()
	}

	for _, e := range d.elements {
		e.ClockEdge()
	}

	d.cycle++

	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    HookPosCycleEnd,
		Item:   d.cycle,
	})

	return true
}

func (d *Domain) allFinished() bool {
	if len(d.finishers) == 0 {
		return false
	}

	for _, f := range d.finishers {
		if !f.Finished() {
			return false
		}
	}

	return true
}
