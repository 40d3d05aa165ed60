// Package sdram provides the sequencing core of the memory-interfacing
// subsystem: a small FSM that turns read/write requests into the
// chip-select, row/column strobe and write-enable timing of a single
// external synchronous memory device, and periodically forces a refresh
// cycle.
package sdram

import (
	"github.com/sarchlab/sdramctrl/sim"
	"github.com/sarchlab/sdramctrl/tracing"
	"github.com/sarchlab/sdramctrl/tristate"
)

// Comp is the SDRAM controller. It is a synchronous element: Evaluate
// settles the combinational outputs from the current state and input pins,
// ClockEdge applies the register update. Output derivation is recomputed on
// every evaluation, not only on state changes, so the pins always reflect
// the current registered state.
type Comp struct {
	*sim.ComponentBase

	bus *tristate.Bus

	in  Inputs
	out Outputs

	state          State
	nextState      State
	refreshCounter uint8
	sdramClk       bool
	cycle          uint64
}

// SetInputs drives the controller's input pins. Address bits above the
// wired 24 are dropped.
func (c *Comp) SetInputs(in Inputs) {
	in.Addr &= AddrMask
	c.in = in
}

// Inputs returns the current levels of the input pins.
func (c *Comp) Inputs() Inputs {
	return c.in
}

// Outputs returns the current levels of the output pins.
func (c *Comp) Outputs() Outputs {
	return c.out
}

// State returns the current registered state.
func (c *Comp) State() State {
	return c.state
}

// RefreshCounter returns the current refresh counter value.
func (c *Comp) RefreshCounter() uint8 {
	return c.refreshCounter
}

// Cycle returns the number of completed clock cycles.
func (c *Comp) Cycle() uint64 {
	return c.cycle
}

// Evaluate settles the combinational logic: the next state and every output
// pin as a function of the current state and, in IDLE, the inputs.
func (c *Comp) Evaluate() {
	c.nextState = nextState(c.state, c.in, c.refreshCounter)

	c.out.CS, c.out.RAS, c.out.CAS, c.out.WE = commandLevels(c.state)
	c.out.Busy = c.state != StateIdle
	c.out.SDRAMClk = c.sdramClk

	if c.state == StateRead || c.state == StateWrite {
		c.out.Addr = uint16(c.in.Addr & RowColMask)
		c.out.Bank = uint8((c.in.Addr >> RowColWidth) & BankMask)
	}
}

// ClockEdge applies the synchronous register update. A reset forces the
// idle configuration and aborts any in-flight transaction; otherwise the
// state register takes the evaluated next state, the derived clock toggles,
// and the refresh counter advances with wrap-around. During a READ cycle the
// data bus is sampled into the data-out register on the same edge, after the
// device has had the chance to drive it.
func (c *Comp) ClockEdge() {
	if c.in.Reset {
		c.reset()
		c.finishCycle()
		return
	}

	if c.state == StateRead {
		c.out.DataOut, _ = c.bus.Sample()
	}

	// The trace row describes the cycle that just completed, so it is
	// captured before the registers take their next values.
	sample := c.signalSample()

	c.state = c.nextState
	c.sdramClk = !c.sdramClk

	if c.refreshCounter == refreshTrigger {
		c.refreshCounter = 0
	} else {
		c.refreshCounter++
	}

	c.emit(sample)
	c.cycle++
}

func (c *Comp) reset() {
	c.state = StateIdle
	c.nextState = StateIdle
	c.refreshCounter = 0
	c.sdramClk = false

	c.out.Busy = false
	c.out.SDRAMClk = false
	c.out.CS, c.out.RAS, c.out.CAS, c.out.WE = commandLevels(StateIdle)
}

func (c *Comp) finishCycle() {
	c.emit(c.signalSample())
	c.cycle++
}

func (c *Comp) emit(sample tracing.SignalSample) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    tracing.HookPosSignalSample,
		Item:   sample,
	})
}

func (c *Comp) signalSample() tracing.SignalSample {
	return tracing.SignalSample{
		Cycle:          c.cycle,
		State:          c.state.String(),
		CS:             c.out.CS,
		RAS:            c.out.RAS,
		CAS:            c.out.CAS,
		WE:             c.out.WE,
		Busy:           c.out.Busy,
		SDRAMClk:       c.out.SDRAMClk,
		Addr:           c.out.Addr,
		Bank:           c.out.Bank,
		DataOut:        c.out.DataOut,
		RefreshCounter: c.refreshCounter,
	}
}
