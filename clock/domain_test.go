package clock

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sdramctrl/sim"
)

type recordingElement struct {
	log   *[]string
	name  string
	cycle uint64
}

func (e *recordingElement) Evaluate() {
	*e.log = append(*e.log, e.name+".eval")
}

func (e *recordingElement) ClockEdge() {
	*e.log = append(*e.log, e.name+".edge")
	e.cycle++
}

type finishingElement struct {
	recordingElement
	finishedAt uint64
}

func (e *finishingElement) Finished() bool {
	return e.cycle >= e.finishedAt
}

var _ = Describe("Domain", func() {
	var (
		engine *sim.SerialEngine
		domain *Domain
		log    []string
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		log = nil
	})

	It("should evaluate all elements before any clock edge", func() {
		domain = MakeBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			WithCycleLimit(1).
			Build("Domain")

		a := &recordingElement{log: &log, name: "a"}
		b := &recordingElement{log: &log, name: "b"}
		domain.AddElement(a)
		domain.AddElement(b)

		domain.TickLater()
		Expect(engine.Run()).To(Succeed())

		Expect(log).To(Equal(
			[]string{"a.eval", "b.eval", "a.edge", "b.edge"}))
	})

	It("should stop at the cycle limit", func() {
		domain = MakeBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			WithCycleLimit(3).
			Build("Domain")

		a := &recordingElement{log: &log, name: "a"}
		domain.AddElement(a)

		domain.TickLater()
		Expect(engine.Run()).To(Succeed())

		Expect(domain.Cycle()).To(Equal(uint64(3)))
		Expect(a.cycle).To(Equal(uint64(3)))
	})

	It("should stop when all finishers are finished", func() {
		domain = MakeBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			WithCycleLimit(1000).
			Build("Domain")

		a := &finishingElement{
			recordingElement: recordingElement{log: &log, name: "a"},
			finishedAt:       5,
		}
		b := &recordingElement{log: &log, name: "b"}
		domain.AddElement(a)
		domain.AddElement(b)

		domain.TickLater()
		Expect(engine.Run()).To(Succeed())

		Expect(domain.Cycle()).To(Equal(uint64(5)))
	})

	It("should invoke the cycle-end hook every cycle", func() {
		domain = MakeBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			WithCycleLimit(4).
			Build("Domain")

		var cycles []uint64
		domain.AcceptHook(hookFunc(func(ctx sim.HookCtx) {
			if ctx.Pos == HookPosCycleEnd {
				cycles = append(cycles, ctx.Item.(uint64))
			}
		}))

		domain.TickLater()
		Expect(engine.Run()).To(Succeed())

		Expect(cycles).To(Equal([]uint64{1, 2, 3, 4}))
	})
})

type hookFunc func(ctx sim.HookCtx)

func (f hookFunc) Func(ctx sim.HookCtx) {
	f(ctx)
}
