// Package linuxi2c adapts a Linux /dev/i2c-N bus (SMBus ioctls) to the
// Tx transfer shape the driver packages consume, for running the driver
// from a Linux host (SBC bring-up, bench rigs) instead of firmware.
package linuxi2c

import (
	"errors"

	"github.com/platinasystems/i2c"
	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*Bus)(nil)

// ErrUnsupported is returned for transfer shapes that do not map onto an
// SMBus byte/word data transaction.
var ErrUnsupported = errors.New("linuxi2c: unsupported transfer shape")

// Bus is a Linux I2C adapter identified by its /dev/i2c-N index.
// The device node is opened per transaction, so a zero-value Bus with an
// index is ready to use and needs no Close.
type Bus struct {
	Index int
}

func New(index int) *Bus { return &Bus{Index: index} }

// Tx performs a register write (w = [reg, data...]) or a write-then-read
// (w = [reg], r = 1 or 2 bytes) as an SMBus byte/word data transaction.
// Word transfers are little-endian, matching the SMBus wire order.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	var bus i2c.Bus
	if err := bus.Open(b.Index); err != nil {
		return err
	}
	defer bus.Close()
	if err := bus.ForceSlaveAddress(int(addr)); err != nil {
		return err
	}

	var data i2c.SMBusData
	switch {
	case len(w) == 1 && len(r) == 1:
		if err := bus.Do(i2c.Read, w[0], i2c.ByteData, &data); err != nil {
			return err
		}
		r[0] = data[0]
	case len(w) == 1 && len(r) == 2:
		if err := bus.Do(i2c.Read, w[0], i2c.WordData, &data); err != nil {
			return err
		}
		r[0], r[1] = data[0], data[1]
	case len(w) == 2 && len(r) == 0:
		data[0] = w[1]
		return bus.Do(i2c.Write, w[0], i2c.ByteData, &data)
	case len(w) == 3 && len(r) == 0:
		data[0], data[1] = w[1], w[2]
		return bus.Do(i2c.Write, w[0], i2c.WordData, &data)
	default:
		return ErrUnsupported
	}
	return nil
}
