package pal

import (
	"github.com/elliotmr/pal/w32/types/dcap"
	"github.com/elliotmr/pal/w32/types/pc"
	"github.com/elliotmr/pal/w32/types/rc"
	"github.com/pkg/errors"
)

// EntriesOnDevice reports the device's palette size. Non-palette
// devices report zero there, so fall back to the device's fixed
// system-color count.
func EntriesOnDevice(d Device) int {
	n := d.Caps(dcap.SizePalette)
	if n == 0 {
		n = d.Caps(dcap.NumColors)
	}
	return n
}

// System snapshots the OS-wide shared palette into a new resource.
func System(d Device) (Palette, error) {
	if d.Caps(dcap.RasterCaps)&int(rc.Palette) == 0 {
		return nil, errors.New("device has no palette support")
	}
	entries := make([]Entry, EntriesOnDevice(d))
	d.SystemPaletteEntries(0, entries)
	return d.NewPalette(entries)
}

// ClearSystem floods the system palette with black to undo whatever
// identity mapping palette-managed applications left behind. The
// clearing palette is selected, realized onto the hardware, and then
// deselected and destroyed, leaving the previously selected palette
// back in place.
func ClearSystem(d Device) error {
	var entries [MaxEntries]Entry
	for i := range entries {
		entries[i].Flags = pc.NoCollapse
	}
	p, err := d.NewPalette(entries[:])
	if err != nil {
		return errors.Wrap(err, "unable to build clearing palette")
	}
	old, err := d.SelectPalette(p, false)
	if err != nil {
		return errors.Wrap(err, "unable to select clearing palette")
	}
	if _, err := d.Realize(); err != nil {
		return errors.Wrap(err, "unable to realize clearing palette")
	}
	if _, err := d.SelectPalette(old, false); err != nil {
		return errors.Wrap(err, "unable to restore previous palette")
	}
	return p.Destroy()
}
