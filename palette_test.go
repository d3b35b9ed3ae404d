package pal

import (
	"testing"

	"github.com/elliotmr/pal/w32/types/pc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	d := NewMemDevice()
	for count := 1; count <= MaxEntries; count++ {
		colors := make([]ColorQuad, count)
		for i := range colors {
			colors[i] = ColorQuad{
				Blue:     uint8(i),
				Green:    uint8(i * 3),
				Red:      uint8(255 - i),
				Reserved: 0xAA, // must not survive the round trip
			}
		}
		p, err := New(d, colors)
		require.NoError(t, err)

		out, err := Colors(p)
		require.NoError(t, err)
		require.Len(t, out, count)

		want := make([]ColorQuad, count)
		copy(want, colors)
		for i := range want {
			want[i].Reserved = 0
		}
		require.Equal(t, want, out)
	}
}

func TestNewLeavesFlagsStatic(t *testing.T) {
	d := NewMemDevice()
	p, err := New(d, make([]ColorQuad, 16))
	require.NoError(t, err)

	entries := make([]Entry, 16)
	read, err := p.Entries(0, entries)
	require.NoError(t, err)
	require.Equal(t, 16, read)
	for _, e := range entries {
		assert.Equal(t, pc.Static, e.Flags)
	}
}

func TestCopy(t *testing.T) {
	d := NewMemDevice()
	p, err := Spectrum(d)
	require.NoError(t, err)

	cp, err := Copy(d, p)
	require.NoError(t, err)
	assert.NotSame(t, p, cp)

	n, err := p.Count()
	require.NoError(t, err)
	cn, err := cp.Count()
	require.NoError(t, err)
	require.Equal(t, n, cn)

	want := make([]Entry, n)
	got := make([]Entry, cn)
	_, err = p.Entries(0, want)
	require.NoError(t, err)
	_, err = cp.Entries(0, got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCopyIsNoAlias(t *testing.T) {
	d := NewMemDevice()
	p, err := New(d, []ColorQuad{{Red: 1}, {Red: 2}})
	require.NoError(t, err)
	cp, err := Copy(d, p)
	require.NoError(t, err)

	// writing through the copy must not show up in the source
	_, err = cp.SetEntries(0, []Entry{{Red: 99}})
	require.NoError(t, err)
	entries := make([]Entry, 1)
	_, err = p.Entries(0, entries)
	require.NoError(t, err)
	assert.EqualValues(t, 1, entries[0].Red)
}

func TestCopyWithFlags(t *testing.T) {
	d := NewMemDevice()
	p, err := Spectrum(d)
	require.NoError(t, err)

	cp, err := CopyWithFlags(d, p, pc.Reserved)
	require.NoError(t, err)

	n, err := cp.Count()
	require.NoError(t, err)
	require.Equal(t, MaxEntries, n)

	want := make([]Entry, n)
	got := make([]Entry, n)
	_, err = p.Entries(0, want)
	require.NoError(t, err)
	_, err = cp.Entries(0, got)
	require.NoError(t, err)
	for i := range got {
		assert.Equal(t, pc.Reserved, got[i].Flags)
		assert.Equal(t, want[i].Red, got[i].Red)
		assert.Equal(t, want[i].Green, got[i].Green)
		assert.Equal(t, want[i].Blue, got[i].Blue)
	}
}

func TestCopyWithFlagsNilSource(t *testing.T) {
	d := NewMemDevice()
	_, err := CopyWithFlags(d, nil, pc.NoCollapse)
	assert.Error(t, err)
}

func TestCopyWithFlagsDestroyedSource(t *testing.T) {
	d := NewMemDevice()
	p, err := New(d, make([]ColorQuad, 4))
	require.NoError(t, err)
	require.NoError(t, p.Destroy())

	_, err = CopyWithFlags(d, p, pc.NoCollapse)
	assert.Error(t, err)
}

func TestColorQuadRGBA(t *testing.T) {
	r, g, b, a := ColorQuad{Blue: 0x12, Green: 0x34, Red: 0x56}.RGBA()
	assert.EqualValues(t, 0x5656, r)
	assert.EqualValues(t, 0x3434, g)
	assert.EqualValues(t, 0x1212, b)
	assert.EqualValues(t, 0xFFFF, a)
}
