// Package tracing observes the per-cycle pin activity of the controller
// through hooks and records it as waveform-style samples.
package tracing

import "github.com/sarchlab/sdramctrl/sim"

// HookPosSignalSample is triggered by the controller after every clock edge.
// The hook item is a SignalSample describing the completed cycle.
var HookPosSignalSample = &sim.HookPos{Name: "Signal Sample"}

// A SignalSample records every externally visible signal of the controller
// for one clock cycle. All fields are flat scalars so a sample can be
// written to a data recorder table directly.
type SignalSample struct {
	Cycle uint64
	State string

	CS  bool
	RAS bool
	CAS bool
	WE  bool

	Busy     bool
	SDRAMClk bool

	Addr    uint16
	Bank    uint8
	DataOut uint16

	RefreshCounter uint8
}
