package tps55288

import (
	"context"

	"tps55288-go/errcode"
	"tps55288-go/x/mathx"
)

// Tick waits between ramp steps and reports whether to continue
// (false => cancelled). Timing lives with the caller so the driver
// performs no sleeps of its own.
type Tick func() bool

// RampVout_mV walks the live output toward target in step-sized
// millivolt increments, one voltage write per step. This is the gentle
// alternative to a single large SetVout when the load cares about dV/dt
// beyond what the hardware slew limiter provides. Legal while enabled.
//
// The target is validated before any transaction; a false Tick stops the
// ramp without error, leaving the output at the last written step.
func (d *Device) RampVout_mV(target, step int32, tick Tick) error {
	return d.rampVout(d.conn(), target, step, tick)
}
func (d *Device) RampVout_mVCtx(ctx context.Context, target, step int32, tick Tick) error {
	return d.rampVout(d.ctxConn(ctx), target, step, tick)
}

func (d *Device) rampVout(t transactor, target, step int32, tick Tick) error {
	if err := d.requireInit("ramp_vout"); err != nil {
		return err
	}
	if step <= 0 {
		return &errcode.E{C: errcode.OutOfRange, Op: "ramp_vout", Msg: "step must be positive"}
	}
	if _, err := quantVout.ToRaw(target); err != nil {
		return wrap("ramp_vout", err)
	}
	cur, err := d.vout(t)
	if err != nil {
		return err
	}
	for cur != target {
		cur += mathx.Clamp(target-cur, -step, step)
		if err := d.setVout(t, cur); err != nil {
			return err
		}
		if cur != target && tick != nil && !tick() {
			return nil
		}
	}
	return nil
}
