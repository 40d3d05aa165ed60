package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/sdramctrl/clock"
	"github.com/sarchlab/sdramctrl/memdevice"
	"github.com/sarchlab/sdramctrl/requester"
	"github.com/sarchlab/sdramctrl/sdram"
	"github.com/sarchlab/sdramctrl/sim"
	"github.com/sarchlab/sdramctrl/simulation"
	"github.com/sarchlab/sdramctrl/tracing"
	"github.com/sarchlab/sdramctrl/tristate"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a write-then-read transaction script.",
	Long: `run drives the controller with a script that writes to an ` +
		`address and then reads it back. The device word at the address is ` +
		`preloaded, so the read returns the preloaded value: the controller ` +
		`has no data path toward the device.`,
	Run: runSimulation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint32("address", 0x123456,
		"Address of the write and read transactions")
	runCmd.Flags().Uint16("data", 0x5A5A,
		"Data of the write transaction")
	runCmd.Flags().Uint16("preload", 0xBEEF,
		"Word preloaded into the device at the addressed location")
	runCmd.Flags().Uint64("cycles", 10000,
		"Cycle limit of the simulation")
	runCmd.Flags().Bool("no-monitor", false,
		"Disable the monitoring server")
	runCmd.Flags().Int("monitor-port", 0,
		"Port of the monitoring server, 0 picks a random port")
	runCmd.Flags().String("trace-path", "",
		"Path of the signal trace database, without extension")
	runCmd.Flags().BoolP("verbose", "v", false,
		"Log every engine event and every signal sample")
}

func runSimulation(cmd *cobra.Command, _ []string) {
	_ = godotenv.Load()

	address, _ := cmd.Flags().GetUint32("address")
	data, _ := cmd.Flags().GetUint16("data")
	preload, _ := cmd.Flags().GetUint16("preload")
	cycles, _ := cmd.Flags().GetUint64("cycles")
	noMonitor, _ := cmd.Flags().GetBool("no-monitor")
	monitorPort, _ := cmd.Flags().GetInt("monitor-port")
	tracePath, _ := cmd.Flags().GetString("trace-path")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if !cmd.Flags().Changed("monitor-port") {
		monitorPort = intFromEnv("SDRAMCTRL_MONITOR_PORT", monitorPort)
	}
	if !cmd.Flags().Changed("trace-path") {
		tracePath = stringFromEnv("SDRAMCTRL_TRACE_PATH", tracePath)
	}

	builder := simulation.MakeBuilder().
		WithOutputFileName(tracePath)
	if noMonitor {
		builder = builder.WithoutMonitoring()
	} else if monitorPort > 0 {
		builder = builder.WithMonitorPort(monitorPort)
	}

	s := builder.Build()
	defer s.Terminate()

	bus := tristate.NewBus()
	ctrl := sdram.MakeBuilder().
		WithBus(bus).
		Build("Ctrl")
	device := memdevice.MakeBuilder().
		WithCommandSource(ctrl).
		WithBus(bus).
		Build("Device")
	device.Preload(uint8(address), preload)

	req := requester.MakeBuilder().
		WithController(ctrl).
		WithScript([]requester.Request{
			{Op: requester.OpWrite, Addr: address, Data: data},
			{Op: requester.OpRead, Addr: address},
		}).
		Build("Requester")

	domain := clock.MakeBuilder().
		WithEngine(s.GetEngine()).
		WithCycleLimit(cycles).
		Build("Domain")
	domain.AddElement(req)
	domain.AddElement(ctrl)
	domain.AddElement(device)

	tracer := tracing.NewSignalTracer(s.GetDataRecorder(), "signal_trace")
	ctrl.AcceptHook(tracer)

	if verbose {
		s.GetEngine().AcceptHook(sim.NewEventLogger(log.Default()))
		ctrl.AcceptHook(tracing.NewSignalLogger(log.Default()))
	}

	s.RegisterComponent(ctrl)
	s.RegisterComponent(device)
	s.RegisterComponent(req)

	if monitor := s.GetMonitor(); monitor != nil {
		waveform := tracing.NewWaveformBuffer(4096)
		ctrl.AcceptHook(waveform)

		monitor.RegisterClockDomain(domain)
		monitor.RegisterWaveformBuffer(waveform)
	}

	domain.TickLater()

	err := s.GetEngine().Run()
	if err != nil {
		log.Panic(err)
	}

	printResults(req.Results(), domain.Cycle())
}

func printResults(results []requester.Result, cycles uint64) {
	fmt.Printf("Simulation finished after %d cycles\n", cycles)
	fmt.Printf("%-6s %-10s %-10s %-8s %-8s\n",
		"op", "addr", "data_out", "issued", "done")

	for _, r := range results {
		fmt.Printf("%-6s 0x%06X   0x%04X     %-8d %-8d\n",
			r.Request.Op, r.Request.Addr, r.DataOut,
			r.IssueCycle, r.DoneCycle)
	}
}

func intFromEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Panicf("invalid %s: %s", key, value)
	}

	return n
}

func stringFromEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	return value
}
