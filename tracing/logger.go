package tracing

import (
	"log"

	"github.com/sarchlab/sdramctrl/sim"
)

// SignalLogger is a hook that prints one line per clock cycle with the
// controller's pin activity.
type SignalLogger struct {
	sim.LogHookBase
}

// NewSignalLogger returns a new SignalLogger which will write into the
// logger.
func NewSignalLogger(logger *log.Logger) *SignalLogger {
	h := new(SignalLogger)
	h.Logger = logger
	return h
}

// Func writes the sample information into the logger.
func (h *SignalLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosSignalSample {
		return
	}

	s, ok := ctx.Item.(SignalSample)
	if !ok {
		return
	}

	h.Logger.Printf(
		"cycle %d, %s, cs %t, ras %t, cas %t, we %t, busy %t, "+
			"addr 0x%04X, ba %d, dq 0x%04X, refresh %d",
		s.Cycle, s.State, s.CS, s.RAS, s.CAS, s.WE, s.Busy,
		s.Addr, s.Bank, s.DataOut, s.RefreshCounter)
}
