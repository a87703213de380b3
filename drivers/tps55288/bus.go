package tps55288

import (
	"context"

	"tps55288-go/errcode"
)

// transactor performs one addressed register transaction. A transaction
// either completes or fails as a unit; it is never split across a
// cancellation point. Both public call surfaces (blocking and
// context-suspending) drive the same operation sequences through this
// interface, so validation and ordering behaviour are identical.
type transactor interface {
	tx(w, r []byte) error
}

// busTx is the blocking adapter: the caller waits on the I2C transfer.
type busTx struct {
	d *Device
}

func (b busTx) tx(w, r []byte) error { return b.d.bus.Tx(b.d.addr, w, r) }

// ctxTx is the suspending adapter: it observes ctx at every transaction
// boundary before handing the bus the same atomic transfer.
type ctxTx struct {
	d   *Device
	ctx context.Context
}

func (c ctxTx) tx(w, r []byte) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}
	return c.d.bus.Tx(c.d.addr, w, r)
}

// Register I/O. The chip uses single-byte registers addressed by a
// sub-address byte; REF is written as a little-endian two-byte burst
// (the chip auto-increments from 0x00).

func (d *Device) readReg(t transactor, reg uint8) (uint8, error) {
	d.w[0] = reg
	if err := t.tx(d.w[:1], d.r[:1]); err != nil {
		return 0, &errcode.E{C: errcode.TransportFailure, Op: "i2c.read", Err: err}
	}
	return d.r[0], nil
}

func (d *Device) writeReg(t transactor, reg, val uint8) error {
	d.w[0] = reg
	d.w[1] = val
	if err := t.tx(d.w[:2], nil); err != nil {
		return &errcode.E{C: errcode.TransportFailure, Op: "i2c.write", Err: err}
	}
	return nil
}

func (d *Device) readWord(t transactor, reg uint8) (uint16, error) {
	d.w[0] = reg
	if err := t.tx(d.w[:1], d.r[:2]); err != nil {
		return 0, &errcode.E{C: errcode.TransportFailure, Op: "i2c.read", Err: err}
	}
	// Little-endian: LOW then HIGH.
	return uint16(d.r[0]) | uint16(d.r[1])<<8, nil
}

func (d *Device) writeWord(t transactor, reg uint8, val uint16) error {
	d.w[0] = reg
	d.w[1] = byte(val)      // low
	d.w[2] = byte(val >> 8) // high
	if err := t.tx(d.w[:3], nil); err != nil {
		return &errcode.E{C: errcode.TransportFailure, Op: "i2c.write", Err: err}
	}
	return nil
}

// updateReg is the read-modify-write pattern for partial-register fields.
func (d *Device) updateReg(t transactor, reg, set, clear uint8) error {
	cur, err := d.readReg(t, reg)
	if err != nil {
		return err
	}
	return d.writeReg(t, reg, (cur|set)&^clear)
}
