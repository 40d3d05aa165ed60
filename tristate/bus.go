// Package tristate models a shared bidirectional bus line as an explicit
// arbitration structure. A physical tri-state line has no direct software
// analogue, so ownership is tracked with a driver tag that both sides must
// check before writing. Driving an already-driven bus is a simulation fault.
package tristate

import "fmt"

// A Driver identifies the party currently driving the bus.
type Driver int

// All parties that can own the bus. DriverNone represents the
// high-impedance state where no party drives the line.
const (
	DriverNone Driver = iota
	DriverController
	DriverDevice
)

// String returns the name of the driver.
func (d Driver) String() string {
	switch d {
	case DriverNone:
		return "None"
	case DriverController:
		return "Controller"
	case DriverDevice:
		return "Device"
	default:
		return fmt.Sprintf("Driver(%d)", int(d))
	}
}

// A Bus is a 16-bit shared data bus that at most one party drives at a time.
// When undriven, Sample returns the residual value left by the last driver.
type Bus struct {
	value  uint16
	driver Driver
}

// NewBus creates an undriven bus.
func NewBus() *Bus {
	return &Bus{driver: DriverNone}
}

// Drive puts a value on the bus on behalf of the given driver. A party that
// already owns the bus may update the value. Driving while another party
// owns the bus is a bus contention fault and panics.
func (b *Bus) Drive(d Driver, value uint16) {
	if d == DriverNone {
		panic("tristate: DriverNone cannot drive the bus")
	}

	if b.driver != DriverNone && b.driver != d {
		panic(fmt.Sprintf(
			"tristate: bus contention, %s drives while %s owns the bus",
			d, b.driver))
	}

	b.driver = d
	b.value = value
}

// Release returns the bus to the high-impedance state. Only the current
// driver may release it. Releasing an undriven bus is a no-op.
func (b *Bus) Release(d Driver) {
	if b.driver == DriverNone {
		return
	}

	if b.driver != d {
		panic(fmt.Sprintf(
			"tristate: %s releases the bus owned by %s", d, b.driver))
	}

	b.driver = DriverNone
}

// Sample returns the value currently present on the bus and the party
// driving it. With no driver the returned value is the residual of the last
// drive and carries no meaning.
func (b *Bus) Sample() (uint16, Driver) {
	return b.value, b.driver
}

// IsDriven tells if any party is currently driving the bus.
func (b *Bus) IsDriven() bool {
	return b.driver != DriverNone
}
