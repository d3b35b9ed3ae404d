package pal

import (
	"github.com/elliotmr/pal/w32/types/dcap"
	"github.com/elliotmr/pal/w32/types/rc"
	"github.com/elliotmr/pal/w32/types/syspal"
	"github.com/pkg/errors"
)

// MemDevice implements Device entirely in memory. It stands in for
// the screen in tests and headless environments: capability queries
// answer from the struct fields, and palette resources are plain
// entry slices.
type MemDevice struct {
	// SizePalette, NumColors, and RasterCaps answer the corresponding
	// capability queries.
	SizePalette int
	NumColors   int
	RasterCaps  rc.RasterCap

	// Use is the reported system palette sharing policy.
	Use syspal.Use

	// SystemEntries is the OS-wide shared palette.
	SystemEntries []Entry

	selected Palette
	realized int
	palettes []*memPalette
}

// NewMemDevice builds a device resembling an 8-bit display in shared
// mode: a 256-entry palette, 20 static colors, and an all-black
// system palette.
func NewMemDevice() *MemDevice {
	return &MemDevice{
		SizePalette:   MaxEntries,
		NumColors:     20,
		RasterCaps:    rc.BitBlt | rc.Palette,
		Use:           syspal.Static,
		SystemEntries: make([]Entry, MaxEntries),
	}
}

func (d *MemDevice) Caps(index dcap.Capability) int {
	switch index {
	case dcap.SizePalette:
		return d.SizePalette
	case dcap.NumColors:
		return d.NumColors
	case dcap.RasterCaps:
		return int(d.RasterCaps)
	}
	return 0
}

func (d *MemDevice) PaletteUse() syspal.Use {
	return d.Use
}

func (d *MemDevice) SystemPaletteEntries(start int, dst []Entry) int {
	if start < 0 || start >= len(d.SystemEntries) {
		return 0
	}
	return copy(dst, d.SystemEntries[start:])
}

func (d *MemDevice) NewPalette(entries []Entry) (Palette, error) {
	p := &memPalette{entries: make([]Entry, len(entries))}
	copy(p.entries, entries)
	d.palettes = append(d.palettes, p)
	return p, nil
}

func (d *MemDevice) SelectPalette(p Palette, forceBackground bool) (Palette, error) {
	prev := d.selected
	d.selected = p
	return prev, nil
}

func (d *MemDevice) Realize() (int, error) {
	mp, ok := d.selected.(*memPalette)
	if !ok {
		return 0, errors.New("no palette selected")
	}
	d.realized++
	return len(mp.entries), nil
}

// Selected reports the palette currently selected into the device.
func (d *MemDevice) Selected() Palette {
	return d.selected
}

// Realized reports how many times a selected palette has been
// realized onto the device.
func (d *MemDevice) Realized() int {
	return d.realized
}

// memPalette is the in-memory palette resource handed out by
// MemDevice.
type memPalette struct {
	entries   []Entry
	destroyed bool
}

func (p *memPalette) Count() (int, error) {
	if p.destroyed {
		return 0, errors.New("palette destroyed")
	}
	return len(p.entries), nil
}

func (p *memPalette) Entries(start int, dst []Entry) (int, error) {
	if p.destroyed {
		return 0, errors.New("palette destroyed")
	}
	if start < 0 || start >= len(p.entries) {
		return 0, nil
	}
	return copy(dst, p.entries[start:]), nil
}

func (p *memPalette) SetEntries(start int, src []Entry) (int, error) {
	if p.destroyed {
		return 0, errors.New("palette destroyed")
	}
	if start < 0 || start >= len(p.entries) {
		return 0, nil
	}
	return copy(p.entries[start:], src), nil
}

func (p *memPalette) Destroy() error {
	if p.destroyed {
		return errors.New("palette destroyed")
	}
	p.destroyed = true
	return nil
}
