package tracing

import (
	"github.com/sarchlab/sdramctrl/datarecording"
	"github.com/sarchlab/sdramctrl/sim"
)

// A SignalTracer is a hook that writes every signal sample of the controller
// it is attached to into a data recorder table.
type SignalTracer struct {
	recorder  datarecording.DataRecorder
	tableName string
}

// NewSignalTracer creates a SignalTracer that writes into the named table of
// the given recorder. The table is created immediately.
func NewSignalTracer(
	recorder datarecording.DataRecorder,
	tableName string,
) *SignalTracer {
	recorder.CreateTable(tableName, SignalSample{})

	return &SignalTracer{
		recorder:  recorder,
		tableName: tableName,
	}
}

// Func records the sample carried by a signal-sample hook invocation.
func (t *SignalTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosSignalSample {
		return
	}

	sample, ok := ctx.Item.(SignalSample)
	if !ok {
		return
	}

	t.recorder.InsertData(t.tableName, sample)
}
