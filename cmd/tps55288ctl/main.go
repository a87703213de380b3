// cmd/tps55288ctl: bench utility for driving a TPS55288 from a Linux
// host over /dev/i2c-N. Used for board bring-up before the firmware
// image exists.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"tps55288-go/drivers/tps55288"
	"tps55288-go/transport/linuxi2c"
)

const txTimeout = 2 * time.Second

func main() {
	var (
		busIndex = flag.Int("bus", 1, "I2C bus index (/dev/i2c-N)")
		altAddr  = flag.Bool("alt", false, "use the 0x75 strap address")
		vout     = flag.Int("vout", 0, "output voltage target in mV (0 = leave unchanged)")
		ilim     = flag.Int("ilim", 0, "current limit in mA (0 = leave unchanged)")
		enable   = flag.Bool("enable", false, "enable the output stage")
		disable  = flag.Bool("disable", false, "disable the output stage")
		clear    = flag.Bool("clear", false, "clear latched faults observed in the status read")
	)
	flag.Parse()

	cfg := tps55288.DefaultConfig()
	if *altAddr {
		cfg.Address = tps55288.AddressAlt
	}
	dev := tps55288.New(linuxi2c.New(*busIndex), cfg)

	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	defer cancel()

	if err := run(ctx, dev, *vout, *ilim, *enable, *disable, *clear); err != nil {
		fmt.Fprintln(os.Stderr, "tps55288ctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dev *tps55288.Device, vout, ilim int, enable, disable, clear bool) error {
	if err := dev.InitCtx(ctx); err != nil {
		return err
	}
	if vout > 0 {
		if err := dev.SetVout_mVCtx(ctx, int32(vout)); err != nil {
			return err
		}
	}
	if ilim > 0 {
		if err := dev.SetCurrentLimit_mACtx(ctx, int32(ilim), true); err != nil {
			return err
		}
	}
	if enable {
		if err := dev.EnableOutputCtx(ctx); err != nil {
			return err
		}
	}
	if disable {
		if err := dev.DisableOutputCtx(ctx); err != nil {
			return err
		}
	}

	st, err := dev.ReadStatusCtx(ctx)
	if err != nil {
		return err
	}
	fmt.Println(st.String())

	mv, err := dev.Vout_mVCtx(ctx)
	if err != nil {
		return err
	}
	ma, limited, err := dev.CurrentLimit_mACtx(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("vout=%dmV ilim=%dmA limiter=%t\n", mv, ma, limited)

	if clear && st.Faults() != 0 {
		if err := dev.ClearFaultsCtx(ctx, st.Faults()); err != nil {
			return err
		}
		fmt.Println("cleared:", st.Faults().String())
	}
	return nil
}
