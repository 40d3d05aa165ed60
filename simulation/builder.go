package simulation

import (
	"github.com/rs/xid"

	"github.com/sarchlab/sdramctrl/datarecording"
	"github.com/sarchlab/sdramctrl/monitoring"
	"github.com/sarchlab/sdramctrl/sim"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	browserOn      bool
	monitorPort    int
	outputFileName string
	dataRecorder   datarecording.DataRecorder
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithBrowser lets the monitor open the inspection URL in a browser when
// the server starts.
func (b Builder) WithBrowser() Builder {
	b.browserOn = true
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithDataRecorder sets a pre-built data recorder, overriding the output
// file name.
func (b Builder) WithDataRecorder(dr datarecording.DataRecorder) Builder {
	b.dataRecorder = dr
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if b.dataRecorder != nil && b.outputFileName != "" {
		panic("output file name cannot be set with a pre-built data recorder")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		compNameIndex: make(map[string]int),
	}

	s.id = xid.New().String()

	s.dataRecorder = b.dataRecorder
	if s.dataRecorder == nil {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "sdramctrl_sim_" + s.id
		}
		s.dataRecorder = datarecording.NewDataRecorder(outputPath)
	}

	s.engine = sim.NewSerialEngine()

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		if !b.browserOn {
			s.monitor.WithoutBrowser()
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitor.StartServer()
	}

	return s
}
