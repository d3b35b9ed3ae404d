package pal

import (
	"github.com/elliotmr/pal/w32/types/dcap"
	"github.com/elliotmr/pal/w32/types/pc"
	"github.com/elliotmr/pal/w32/types/syspal"
)

// Identity builds a palette whose indices line up 1:1 with the
// realized hardware palette, so that drawing a color-mapped image
// through it causes no remapping. The layout depends on the device's
// palette sharing policy.
func Identity(d Device, colors []ColorQuad) (Palette, error) {
	var entries [MaxEntries]Entry

	if d.PaletteUse() == syspal.NoStatic {
		// The device reserves nothing: take the whole table, marking
		// every entry no-collapse so it cannot be merged with another
		// application's static colors.
		i := 0
		for ; i < len(colors) && i < MaxEntries; i++ {
			entries[i].Red = colors[i].Red
			entries[i].Green = colors[i].Green
			entries[i].Blue = colors[i].Blue
			entries[i].Flags = pc.NoCollapse
		}
		for ; i < MaxEntries; i++ {
			entries[i].Flags = pc.NoCollapse
		}

		// Slots 0 and 255 are the device's fixed black and white
		// reservations. They always win, even over the caller's table.
		entries[255] = Entry{Red: 255, Green: 255, Blue: 255}
		entries[0] = Entry{}
	} else {
		// The device reserves static colors, split evenly across the
		// low and high ends of the table. Copy the system palette
		// wholesale, then lay the caller's table into the middle.
		nStatic := d.Caps(dcap.NumColors)
		d.SystemPaletteEntries(0, entries[:])

		nStatic /= 2
		if nStatic > MaxEntries/2 {
			nStatic = MaxEntries / 2
		}
		i := 0
		for ; i < nStatic; i++ {
			entries[i].Flags = 0
		}
		nUsable := len(colors) - nStatic
		for ; i < nUsable && i < MaxEntries; i++ {
			entries[i].Red = colors[i].Red
			entries[i].Green = colors[i].Green
			entries[i].Blue = colors[i].Blue
			entries[i].Flags = pc.NoCollapse
		}
		for ; i < MaxEntries-nStatic; i++ {
			entries[i].Flags = pc.NoCollapse
		}
		for i = MaxEntries - nStatic; i < MaxEntries; i++ {
			entries[i].Flags = 0
		}
	}

	return d.NewPalette(entries[:])
}
