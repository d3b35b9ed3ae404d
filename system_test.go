package pal

import (
	"testing"

	"github.com/elliotmr/pal/w32/types/pc"
	"github.com/elliotmr/pal/w32/types/rc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesOnDevice(t *testing.T) {
	d := NewMemDevice()
	assert.Equal(t, MaxEntries, EntriesOnDevice(d))
}

func TestEntriesOnDeviceNonPaletteFallback(t *testing.T) {
	d := NewMemDevice()
	d.SizePalette = 0
	d.NumColors = 20
	assert.Equal(t, 20, EntriesOnDevice(d))
}

func TestSystem(t *testing.T) {
	d := NewMemDevice()
	for i := range d.SystemEntries {
		d.SystemEntries[i] = Entry{
			Red:   uint8(i),
			Green: uint8(i / 2),
			Blue:  uint8(255 - i),
		}
	}

	p, err := System(d)
	require.NoError(t, err)

	n, err := p.Count()
	require.NoError(t, err)
	require.Equal(t, MaxEntries, n)

	entries := make([]Entry, n)
	_, err = p.Entries(0, entries)
	require.NoError(t, err)
	assert.Equal(t, d.SystemEntries, entries)
}

func TestSystemWithoutPaletteSupport(t *testing.T) {
	d := NewMemDevice()
	d.RasterCaps = rc.BitBlt // palette bit missing

	_, err := System(d)
	assert.Error(t, err)
}

func TestSystemSizeFromDevice(t *testing.T) {
	d := NewMemDevice()
	d.SizePalette = 16

	p, err := System(d)
	require.NoError(t, err)
	n, err := p.Count()
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}

func TestClearSystem(t *testing.T) {
	d := NewMemDevice()
	prev, err := New(d, make([]ColorQuad, 16))
	require.NoError(t, err)
	_, err = d.SelectPalette(prev, false)
	require.NoError(t, err)

	require.NoError(t, ClearSystem(d))

	// the previously selected palette must be back in place, after
	// exactly one realize of the clearing palette
	assert.Same(t, prev, d.Selected())
	assert.Equal(t, 1, d.Realized())

	clearing := d.palettes[len(d.palettes)-1]
	assert.True(t, clearing.destroyed)
	for _, e := range clearing.entries {
		assert.Equal(t, Entry{Flags: pc.NoCollapse}, e)
	}
	require.Len(t, clearing.entries, MaxEntries)
}
