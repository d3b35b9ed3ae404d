package pal

// Spectrum builds a fixed 256-entry palette spread evenly across the
// color cube: 8 red levels, 8 green levels, 4 blue levels. It is
// useful when several color-mapped images with different palettes
// have to share one reasonable selection of colors.
func Spectrum(d Device) (Palette, error) {
	var entries [MaxEntries]Entry
	var red, green, blue uint8
	for i := range entries {
		entries[i] = Entry{Red: red, Green: green, Blue: blue}

		// nested-carry counter: red steps by 32, carrying into green,
		// which carries into blue by 64
		red += 32
		if red == 0 {
			green += 32
			if green == 0 {
				blue += 64
			}
		}
	}
	return d.NewPalette(entries[:])
}
