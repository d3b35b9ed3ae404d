// Package pal builds, copies, and queries color palettes on top of
// the host display's palette manager.
//
// All operations run against a Device. On windows, Screen acquires a
// GDI-backed device covering the whole display; MemDevice offers the
// same surface entirely in memory for tests and headless use. Every
// operation allocates, uses, and releases its working buffers within
// the call; the only thing handed back to the caller is an owned
// Palette resource, which the caller must Destroy when done.
package pal

import (
	"github.com/elliotmr/pal/w32/types/pc"
)

// MaxEntries is the largest entry count a palette resource carries.
const MaxEntries = 256

// ColorQuad is a color table entry in device order (blue first), the
// layout used by DIB color tables and image file formats.
type ColorQuad struct {
	Blue     uint8
	Green    uint8
	Red      uint8
	Reserved uint8
}

// RGBA implements the image/color.Color interface.
func (c ColorQuad) RGBA() (r, g, b, a uint32) {
	r = uint32(c.Red)<<8 | uint32(c.Red)
	g = uint32(c.Green)<<8 | uint32(c.Green)
	b = uint32(c.Blue)<<8 | uint32(c.Blue)
	a = 0xFFFF
	return
}

// Entry is a single palette entry in resource order (red first),
// matching the layout of the Win32 PALETTEENTRY structure.
type Entry struct {
	Red   uint8
	Green uint8
	Blue  uint8
	Flags pc.Flag
}
