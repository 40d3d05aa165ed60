package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sdramctrl/clock"
	"github.com/sarchlab/sdramctrl/sim"
	"github.com/sarchlab/sdramctrl/tracing"
)

type sampleComponent struct {
	*sim.ComponentBase
}

func newSampleComponent(name string) *sampleComponent {
	return &sampleComponent{
		ComponentBase: sim.NewComponentBase(name),
	}
}

var _ = Describe("Monitor", func() {
	var (
		m *Monitor
	)

	BeforeEach(func() {
		m = NewMonitor()
	})

	It("should register components", func() {
		m.RegisterComponent(newSampleComponent("Comp1"))
		m.RegisterComponent(newSampleComponent("Comp2"))

		Expect(m.components).To(HaveLen(2))
	})

	It("should reject privileged port numbers", func() {
		m.WithPortNumber(80)

		Expect(m.portNumber).To(Equal(0))
	})

	It("should list registered components", func() {
		m.RegisterComponent(newSampleComponent("Comp1"))
		m.RegisterComponent(newSampleComponent("Comp2"))

		w := httptest.NewRecorder()
		m.listComponents(w, nil)

		Expect(w.Body.String()).To(Equal(`["Comp1","Comp2"]`))
	})

	It("should 404 on an unknown component", func() {
		w := httptest.NewRecorder()
		c := m.findComponentOr404(w, "NoSuchComp")

		Expect(c).To(BeNil())
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should report the clock domain progress", func() {
		engine := sim.NewSerialEngine()
		domain := clock.MakeBuilder().
			WithEngine(engine).
			WithCycleLimit(100).
			Build("Domain")
		m.RegisterClockDomain(domain)

		w := httptest.NewRecorder()
		m.cycle(w, nil)

		Expect(w.Body.String()).To(Equal(`{"cycle":0,"cycle_limit":100}`))
	})

	It("should 404 on cycle progress without a domain", func() {
		w := httptest.NewRecorder()
		m.cycle(w, nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should serve the most recent signal samples", func() {
		buf := tracing.NewWaveformBuffer(16)
		for i := uint64(0); i < 4; i++ {
			buf.Func(sim.HookCtx{
				Pos:  tracing.HookPosSignalSample,
				Item: tracing.SignalSample{Cycle: i},
			})
		}
		m.RegisterWaveformBuffer(buf)

		r := httptest.NewRequest(
			http.MethodGet, "/api/signals?limit=2", nil)
		w := httptest.NewRecorder()
		m.listSignals(w, r)

		var samples []tracing.SignalSample
		err := json.Unmarshal(w.Body.Bytes(), &samples)

		Expect(err).To(BeNil())
		Expect(samples).To(HaveLen(2))
		Expect(samples[0].Cycle).To(Equal(uint64(2)))
		Expect(samples[1].Cycle).To(Equal(uint64(3)))
	})

	It("should reject a malformed signal limit", func() {
		m.RegisterWaveformBuffer(tracing.NewWaveformBuffer(16))

		r := httptest.NewRequest(
			http.MethodGet, "/api/signals?limit=abc", nil)
		w := httptest.NewRecorder()
		m.listSignals(w, r)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
