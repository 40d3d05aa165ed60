// Package requester provides the scripted stimulus that exercises the
// controller: it presents an address (and, for writes, data), asserts the
// read or write request line while the controller is idle, and observes the
// busy indicator and the returned data word.
package requester

import (
	"github.com/sarchlab/sdramctrl/sdram"
	"github.com/sarchlab/sdramctrl/sim"
)

// An Op is the kind of a scripted request.
type Op int

// The two request kinds.
const (
	OpWrite Op = iota
	OpRead
)

// String returns the name of the op.
func (o Op) String() string {
	if o == OpWrite {
		return "write"
	}
	return "read"
}

// A Request is one scripted transaction.
type Request struct {
	Op   Op
	Addr uint32
	Data uint16
}

// A Result records the completion of one scripted transaction. DataOut is
// the controller's data-out pin at completion, which for reads carries the
// value returned by the device.
type Result struct {
	Request    Request
	DataOut    uint16
	IssueCycle uint64
	DoneCycle  uint64
}

// A Controller is the pin surface the requester drives and observes.
type Controller interface {
	SetInputs(sdram.Inputs)
	Outputs() sdram.Outputs
}

type phase int

const (
	phaseIssue phase = iota
	phaseAwaitBusy
	phaseAwaitIdle
)

// Comp walks a script of requests against the controller. It holds each
// request asserted until busy rises, then deasserts and waits for busy to
// fall before recording the result and issuing the next request.
type Comp struct {
	*sim.ComponentBase

	ctrl   Controller
	script []Request

	resetRemaining int
	phase          phase
	index          int
	busySeen       int
	issueCycle     uint64
	cycle          uint64

	results []Result
}

// Results returns the completed transactions, in script order.
func (r *Comp) Results() []Result {
	return r.results
}

// Finished tells if the whole script has completed.
func (r *Comp) Finished() bool {
	return r.resetRemaining == 0 &&
		r.index >= len(r.script) &&
		r.phase == phaseIssue
}

// Evaluate drives the controller's input pins for this cycle. The busy level
// it observes is the one the controller settled in the previous cycle, which
// models the wire between the two elements.
func (r *Comp) Evaluate() {
	in := sdram.Inputs{Reset: r.resetRemaining > 0}
	if in.Reset {
		r.ctrl.SetInputs(in)
		return
	}

	out := r.ctrl.Outputs()

	switch r.phase {
	case phaseIssue:
		if r.index < len(r.script) && !out.Busy {
			in = requestPins(in, r.script[r.index])
			r.issueCycle = r.cycle
			r.busySeen = 0
			r.phase = phaseAwaitBusy
		}
	case phaseAwaitBusy:
		if out.Busy {
			r.busySeen++
			r.phase = phaseAwaitIdle
		} else {
			in = requestPins(in, r.script[r.index])
		}
	case phaseAwaitIdle:
		if out.Busy {
			r.busySeen++
		} else {
			r.completeOrRetry(out)
		}
	}

	r.ctrl.SetInputs(in)
}

// completeOrRetry decides what a falling busy edge meant. A transaction
// holds busy for two cycles (READ/WRITE then PRECHARGE); a single busy cycle
// means a refresh won arbitration and consumed the request, so the request
// is issued again.
func (r *Comp) completeOrRetry(out sdram.Outputs) {
	if r.busySeen < 2 {
		r.phase = phaseIssue
		return
	}

	r.results = append(r.results, Result{
		Request:    r.script[r.index],
		DataOut:    out.DataOut,
		IssueCycle: r.issueCycle,
		DoneCycle:  r.cycle,
	})
	r.index++
	r.phase = phaseIssue
}

// ClockEdge advances the requester's cycle bookkeeping.
func (r *Comp) ClockEdge() {
	if r.resetRemaining > 0 {
		r.resetRemaining--
	}

	r.cycle++
}

func requestPins(in sdram.Inputs, req Request) sdram.Inputs {
	in.Addr = req.Addr
	in.DataIn = req.Data
	in.WriteReq = req.Op == OpWrite
	in.ReadReq = req.Op == OpRead

	return in
}
