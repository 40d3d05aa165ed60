// The sdramctrl command runs a scripted simulation of the SDRAM controller
// against a simulated memory device.
package main

func main() {
	Execute()
}
