package facade_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sghaida/patterns/structural/facade"
	"github.com/stretchr/testify/assert"
)

// TestComputer_Start verifies the subsystems run in boot order.
func TestComputer_Start(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	facade.NewComputer(&buf).Start()

	want := strings.Join([]string{
		"Facade: Starting computer...",
		"CPU: Freezing processor.",
		"HardDrive: Reading 1024 bytes from LBA 100.",
		"Memory: Loading data 'Data from 100' into position 0.",
		"CPU: Jumping to 0.",
		"CPU: Executing instructions.",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// TestHardDrive_Read verifies the returned block names its address.
func TestHardDrive_Read(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := facade.NewComputer(&buf)
	assert.Equal(t, "Data from 7", c.Disk.Read(7, 16))
	assert.Equal(t, "HardDrive: Reading 16 bytes from LBA 7.\n", buf.String())
}
