// Package memdevice provides the memory-side harness of the simulation: a
// word-addressed storage behind a bus driver that drives the shared data bus
// while the controller issues a read command and leaves the bus undriven
// otherwise.
package memdevice

import (
	"log"

	"github.com/sarchlab/sdramctrl/sdram"
	"github.com/sarchlab/sdramctrl/sim"
	"github.com/sarchlab/sdramctrl/tristate"
)

// A CommandSource exposes the controller-side pins the device observes.
type CommandSource interface {
	Outputs() sdram.Outputs
}

// Comp is the simulated memory device. It holds one 16-bit word per
// low-byte index of the row/column address.
type Comp struct {
	*sim.ComponentBase

	pins    CommandSource
	bus     *tristate.Bus
	storage *Storage

	driving bool
}

// Preload stores a word at the given device index before the simulation
// starts, so that later reads have a known value to return.
func (d *Comp) Preload(index uint8, word uint16) {
	err := d.storage.WriteWord(wordAddress(index), word)
	if err != nil {
		log.Panic(err)
	}
}

// Word returns the stored word at the given device index.
func (d *Comp) Word(index uint8) uint16 {
	word, err := d.storage.ReadWord(wordAddress(index))
	if err != nil {
		log.Panic(err)
	}

	return word
}

// Evaluate drives the shared bus with the addressed word while the read
// command holds, and releases the bus otherwise. It runs after the
// controller's evaluation within a cycle, so the command and address pins
// are already settled.
func (d *Comp) Evaluate() {
	out := d.pins.Outputs()

	if isReadCommand(out) {
		d.bus.Drive(tristate.DriverDevice, d.Word(deviceIndex(out)))
		d.driving = true
		return
	}

	if d.driving {
		d.bus.Release(tristate.DriverDevice)
		d.driving = false
	}
}

// ClockEdge latches write data from the bus on a write command. The
// controller never drives the bus with write data (its data-in pin is left
// unwired), so the store only happens when some other party drove the bus.
func (d *Comp) ClockEdge() {
	out := d.pins.Outputs()

	if !isWriteCommand(out) {
		return
	}

	value, driver := d.bus.Sample()
	if driver != tristate.DriverController {
		return
	}

	err := d.storage.WriteWord(wordAddress(deviceIndex(out)), value)
	if err != nil {
		log.Panic(err)
	}
}

// deviceIndex selects the stored word for a command. The device decodes only
// the low byte of the row/column address, which always equals the low byte
// of the requested address.
func deviceIndex(out sdram.Outputs) uint8 {
	return uint8(out.Addr)
}

func wordAddress(index uint8) uint64 {
	return uint64(index) * 2
}

func isReadCommand(out sdram.Outputs) bool {
	return !out.CS && !out.RAS && out.CAS && out.WE
}

// isWriteCommand also matches the PRECHARGE cycle, which shares the write
// command levels in this design. That is harmless: the bus carries no
// controller-driven data in either cycle.
func isWriteCommand(out sdram.Outputs) bool {
	return !out.CS && !out.RAS && out.CAS && !out.WE
}
