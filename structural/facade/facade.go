// Package facade hides the boot sequence of a few subsystems behind Computer.Start.
package facade

import (
	"fmt"
	"io"
)

// Boot parameters used by Start.
const (
	BootAddress = 0
	BootSector  = 100
	SectorSize  = 1024
)

// CPU is a subsystem.
type CPU struct{ w io.Writer }

// Freeze halts the processor.
func (c CPU) Freeze() { fmt.Fprintln(c.w, "CPU: Freezing processor.") }

// Jump moves the instruction pointer.
func (c CPU) Jump(position int) { fmt.Fprintf(c.w, "CPU: Jumping to %d.\n", position) }

// Execute runs from the current position.
func (c CPU) Execute() { fmt.Fprintln(c.w, "CPU: Executing instructions.") }

// Memory is a subsystem.
type Memory struct{ w io.Writer }

// Load places data at position.
func (m Memory) Load(position int, data string) {
	fmt.Fprintf(m.w, "Memory: Loading data '%s' into position %d.\n", data, position)
}

// HardDrive is a subsystem.
type HardDrive struct{ w io.Writer }

// Read returns size bytes starting at lba.
func (h HardDrive) Read(lba, size int) string {
	fmt.Fprintf(h.w, "HardDrive: Reading %d bytes from LBA %d.\n", size, lba)
	return fmt.Sprintf("Data from %d", lba)
}

// Computer is the facade.
type Computer struct {
	w      io.Writer
	CPU    CPU
	Memory Memory
	Disk   HardDrive
}

// NewComputer wires the subsystems to trace into w.
func NewComputer(w io.Writer) *Computer {
	return &Computer{w: w, CPU: CPU{w: w}, Memory: Memory{w: w}, Disk: HardDrive{w: w}}
}

// Start boots the machine.
func (c *Computer) Start() {
	fmt.Fprintln(c.w, "Facade: Starting computer...")
	c.CPU.Freeze()
	data := c.Disk.Read(BootSector, SectorSize)
	c.Memory.Load(BootAddress, data)
	c.CPU.Jump(BootAddress)
	c.CPU.Execute()
}
