// +build windows

package w32

import (
	"testing"

	"github.com/elliotmr/pal/w32/types/dcap"
	"github.com/elliotmr/pal/w32/types/pc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenDC(t *testing.T) {
	dc, err := ScreenDC()
	require.NoError(t, err)
	assert.NotZero(t, dc.Caps(dcap.BitsPixel))
	assert.NoError(t, dc.Release())
}

func TestPaletteLifecycle(t *testing.T) {
	entries := make([]PaletteEntry, 16)
	for i := range entries {
		entries[i] = PaletteEntry{Red: uint8(i * 16), Green: 7, Blue: 3, Flags: pc.NoCollapse}
	}

	p, err := CreatePalette(entries)
	require.NoError(t, err)

	n, err := p.Count()
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	got := make([]PaletteEntry, 16)
	read, err := p.Entries(0, got)
	require.NoError(t, err)
	require.Equal(t, 16, read)
	assert.Equal(t, entries, got)

	got[3].Flags = pc.Reserved
	wrote, err := p.SetEntries(3, got[3:4])
	require.NoError(t, err)
	assert.Equal(t, 1, wrote)

	assert.NoError(t, p.Destroy())
}
