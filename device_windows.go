// +build windows

package pal

import (
	"unsafe"

	"github.com/elliotmr/pal/w32"
	"github.com/elliotmr/pal/w32/types/dcap"
	"github.com/elliotmr/pal/w32/types/syspal"
	"github.com/pkg/errors"
)

// GDIDevice is a Device backed by a GDI device context.
type GDIDevice struct {
	dc *w32.DC
}

// Screen acquires the default display device. The caller must pair a
// successful acquisition with Release.
func Screen() (*GDIDevice, error) {
	dc, err := w32.ScreenDC()
	if err != nil {
		return nil, errors.Wrap(err, "unable to acquire screen device context")
	}
	return &GDIDevice{dc: dc}, nil
}

// Release returns the underlying device context to the system.
func (d *GDIDevice) Release() error {
	return d.dc.Release()
}

func (d *GDIDevice) Caps(index dcap.Capability) int {
	return d.dc.Caps(index)
}

func (d *GDIDevice) PaletteUse() syspal.Use {
	return d.dc.SystemPaletteUse()
}

func (d *GDIDevice) SystemPaletteEntries(start int, dst []Entry) int {
	return d.dc.SystemPaletteEntries(start, w32Entries(dst))
}

func (d *GDIDevice) NewPalette(entries []Entry) (Palette, error) {
	p, err := w32.CreatePalette(w32Entries(entries))
	if err != nil {
		return nil, err
	}
	return &gdiPalette{p: p}, nil
}

func (d *GDIDevice) SelectPalette(p Palette, forceBackground bool) (Palette, error) {
	gp, ok := p.(*gdiPalette)
	if !ok {
		return nil, errors.New("palette does not belong to a GDI device")
	}
	prev, err := d.dc.SelectPalette(gp.p, forceBackground)
	if err != nil {
		return nil, err
	}
	return &gdiPalette{p: prev}, nil
}

func (d *GDIDevice) Realize() (int, error) {
	return d.dc.Realize()
}

// gdiPalette adapts a w32 palette handle to the Palette interface.
type gdiPalette struct {
	p *w32.Palette
}

func (p *gdiPalette) Count() (int, error) {
	return p.p.Count()
}

func (p *gdiPalette) Entries(start int, dst []Entry) (int, error) {
	return p.p.Entries(start, w32Entries(dst))
}

func (p *gdiPalette) SetEntries(start int, src []Entry) (int, error) {
	return p.p.SetEntries(start, w32Entries(src))
}

func (p *gdiPalette) Destroy() error {
	return p.p.Destroy()
}

// w32Entries reinterprets an entry slice for the syscall layer. Entry
// and w32.PaletteEntry share the PALETTEENTRY layout.
func w32Entries(entries []Entry) []w32.PaletteEntry {
	if len(entries) == 0 {
		return nil
	}
	return unsafe.Slice((*w32.PaletteEntry)(unsafe.Pointer(&entries[0])), len(entries))
}
