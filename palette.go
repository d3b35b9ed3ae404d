package pal

import (
	"github.com/elliotmr/pal/w32/types/pc"
	"github.com/pkg/errors"
)

// New builds a palette resource from a device-ordered color table.
// The flags of every entry are left static (zero).
func New(d Device, colors []ColorQuad) (Palette, error) {
	entries := make([]Entry, len(colors))
	for i, c := range colors {
		entries[i].Red = c.Red
		entries[i].Green = c.Green
		entries[i].Blue = c.Blue
	}
	return d.NewPalette(entries)
}

// Colors reads a palette resource back into a device-ordered color
// table. The length comes from the resource itself, and the Reserved
// byte of every returned entry is zero no matter what the entry's
// flags were.
func Colors(p Palette) ([]ColorQuad, error) {
	n, err := p.Count()
	if err != nil {
		return nil, errors.Wrap(err, "unable to query palette size")
	}
	entries := make([]Entry, n)
	read, err := p.Entries(0, entries)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read palette entries")
	}
	colors := make([]ColorQuad, read)
	for i, e := range entries[:read] {
		colors[i] = ColorQuad{Blue: e.Blue, Green: e.Green, Red: e.Red}
	}
	return colors, nil
}

// Copy duplicates a palette resource. The new resource holds as many
// entries as the read from the source actually returned.
func Copy(d Device, p Palette) (Palette, error) {
	n, err := p.Count()
	if err != nil {
		return nil, errors.Wrap(err, "unable to query palette size")
	}
	entries := make([]Entry, n)
	read, err := p.Entries(0, entries)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read palette entries")
	}
	return d.NewPalette(entries[:read])
}

// CopyWithFlags duplicates a palette resource and rewrites the flags
// of every entry in the copy to flag, leaving the colors untouched.
func CopyWithFlags(d Device, p Palette, flag pc.Flag) (Palette, error) {
	if p == nil {
		return nil, errors.New("no source palette")
	}
	n, err := p.Count()
	if err != nil {
		return nil, errors.Wrap(err, "unable to query palette size")
	}
	np, err := Copy(d, p)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, n)
	read, err := np.Entries(0, entries)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read palette entries")
	}
	for i := range entries[:read] {
		entries[i].Flags = flag
	}
	if _, err := np.SetEntries(0, entries[:read]); err != nil {
		return nil, errors.Wrap(err, "unable to write palette entries")
	}
	return np, nil
}
