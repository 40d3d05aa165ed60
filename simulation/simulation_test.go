package simulation

import (
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sdramctrl/datarecording"
	"github.com/sarchlab/sdramctrl/sim"
)

type sampleComponent struct {
	*sim.ComponentBase
}

func newSampleComponent(name string) *sampleComponent {
	return &sampleComponent{
		ComponentBase: sim.NewComponentBase(name),
	}
}

func inMemoryRecorder() datarecording.DataRecorder {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		panic(err)
	}

	return datarecording.NewDataRecorderWithDB(db)
}

var _ = Describe("Simulation", func() {
	var (
		simulation *Simulation
	)

	BeforeEach(func() {
		simulation = MakeBuilder().
			WithoutMonitoring().
			WithDataRecorder(inMemoryRecorder()).
			Build()
	})

	AfterEach(func() {
		simulation.Terminate()
	})

	It("should have an engine and a data recorder", func() {
		Expect(simulation.GetEngine()).ToNot(BeNil())
		Expect(simulation.GetDataRecorder()).ToNot(BeNil())
		Expect(simulation.ID()).ToNot(BeEmpty())
	})

	It("should not have a monitor when monitoring is off", func() {
		Expect(simulation.GetMonitor()).To(BeNil())
	})

	It("should register a component", func() {
		comp := newSampleComponent("Comp")

		simulation.RegisterComponent(comp)

		Expect(simulation.GetComponentByName("Comp")).To(
			BeIdenticalTo(sim.Component(comp)))
		Expect(simulation.Components()).To(HaveLen(1))
	})

	It("should panic on a duplicate component name", func() {
		simulation.RegisterComponent(newSampleComponent("Comp"))

		Expect(func() {
			simulation.RegisterComponent(newSampleComponent("Comp"))
		}).To(Panic())
	})

	It("should panic when the monitor port is set without monitoring", func() {
		Expect(func() {
			MakeBuilder().
				WithoutMonitoring().
				WithMonitorPort(8080).
				Build()
		}).To(Panic())
	})
})
