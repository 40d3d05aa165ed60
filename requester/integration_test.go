package requester

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sdramctrl/clock"
	"github.com/sarchlab/sdramctrl/memdevice"
	"github.com/sarchlab/sdramctrl/sdram"
	"github.com/sarchlab/sdramctrl/sim"
	"github.com/sarchlab/sdramctrl/tracing"
	"github.com/sarchlab/sdramctrl/tristate"
)

type scenario struct {
	engine *sim.SerialEngine
	domain *clock.Domain
	ctrl   *sdram.Comp
	device *memdevice.Comp
	req    *Comp
}

func buildScenario(script []Request, cycleLimit uint64) *scenario {
	engine := sim.NewSerialEngine()
	bus := tristate.NewBus()

	ctrl := sdram.MakeBuilder().
		WithBus(bus).
		Build("Ctrl")
	device := memdevice.MakeBuilder().
		WithCommandSource(ctrl).
		WithBus(bus).
		Build("Device")
	req := MakeBuilder().
		WithController(ctrl).
		WithScript(script).
		Build("Requester")

	domain := clock.MakeBuilder().
		WithEngine(engine).
		WithCycleLimit(cycleLimit).
		Build("Domain")

	// Signal flow within a cycle: the requester presents its pins, the
	// controller settles its command, the device answers on the bus.
	domain.AddElement(req)
	domain.AddElement(ctrl)
	domain.AddElement(device)
	domain.TickLater()

	return &scenario{
		engine: engine,
		domain: domain,
		ctrl:   ctrl,
		device: device,
		req:    req,
	}
}

var _ = Describe("Scripted transactions against the controller", func() {
	It("should run a write followed by a read of a preloaded word", func() {
		s := buildScenario([]Request{
			{Op: OpWrite, Addr: 0x123456, Data: 0x5A5A},
			{Op: OpRead, Addr: 0x123456},
		}, 1000)
		s.device.Preload(0x56, 0xBEEF)

		Expect(s.engine.Run()).To(Succeed())

		results := s.req.Results()
		Expect(results).To(HaveLen(2))

		// The controller has no data path toward the device, so the
		// write leaves the stored word untouched and the read returns
		// the preloaded value, not the written one.
		Expect(s.device.Word(0x56)).To(Equal(uint16(0xBEEF)))
		Expect(results[1].DataOut).To(Equal(uint16(0xBEEF)))

		Expect(s.req.Finished()).To(BeTrue())
		Expect(s.domain.Cycle()).To(BeNumerically("<", 20))
	})

	It("should present the row bits and bank of the requested address", func() {
		s := buildScenario([]Request{
			{Op: OpWrite, Addr: 0x123456, Data: 0x5A5A},
		}, 1000)

		var writeSamples []tracing.SignalSample
		buf := tracing.NewWaveformBuffer(1024)
		s.ctrl.AcceptHook(buf)

		Expect(s.engine.Run()).To(Succeed())

		for _, sample := range buf.Samples() {
			if sample.State == "WRITE" {
				writeSamples = append(writeSamples, sample)
			}
		}

		Expect(writeSamples).To(HaveLen(1))
		Expect(writeSamples[0].Addr).To(Equal(uint16(0x1456)))
		Expect(writeSamples[0].Bank).To(Equal(uint8(1)))
		Expect(writeSamples[0].CS).To(BeFalse())
		Expect(writeSamples[0].RAS).To(BeFalse())
		Expect(writeSamples[0].CAS).To(BeTrue())
		Expect(writeSamples[0].WE).To(BeFalse())
	})

	It("should complete every request across a refresh window", func() {
		var script []Request
		for i := 0; i < 80; i++ {
			script = append(script, Request{
				Op:   OpRead,
				Addr: uint32(i),
			})
		}

		s := buildScenario(script, 2000)
		for i := 0; i < 80; i++ {
			s.device.Preload(uint8(i), uint16(0x100+i))
		}

		Expect(s.engine.Run()).To(Succeed())

		results := s.req.Results()
		Expect(results).To(HaveLen(80))
		for i, result := range results {
			Expect(result.DataOut).To(Equal(uint16(0x100 + i)))
		}

		// At least one request crossed the periodic refresh and took a
		// retry, so the run is longer than the uncontended schedule.
		Expect(s.domain.Cycle()).To(BeNumerically(">", uint64(80*5)))
		Expect(s.req.Finished()).To(BeTrue())
	})

	It("should record one waveform sample per cycle", func() {
		s := buildScenario([]Request{
			{Op: OpRead, Addr: 0x000001},
		}, 1000)

		buf := tracing.NewWaveformBuffer(1024)
		s.ctrl.AcceptHook(buf)

		Expect(s.engine.Run()).To(Succeed())

		Expect(buf.Samples()).To(HaveLen(int(s.domain.Cycle())))
	})
})
