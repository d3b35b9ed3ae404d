package pal

import (
	"github.com/elliotmr/pal/w32/types/dcap"
	"github.com/elliotmr/pal/w32/types/syspal"
)

// Palette is an owned palette resource. Construction copies the
// descriptor, so callers may reuse their entry slices as soon as
// NewPalette returns. A resource must be released with Destroy when
// it is no longer needed; copies are always distinct resources, never
// aliases.
type Palette interface {
	// Count reports how many entries the resource holds.
	Count() (int, error)

	// Entries reads up to len(dst) entries starting at start,
	// returning the number actually read.
	Entries(start int, dst []Entry) (int, error)

	// SetEntries writes up to len(src) entries starting at start,
	// returning the number actually written.
	SetEntries(start int, src []Entry) (int, error)

	// Destroy releases the resource.
	Destroy() error
}

// Device abstracts the host display that palette operations run
// against. Acquisition and release of the device itself is backend
// specific and belongs to the caller.
type Device interface {
	// Caps answers a device capability query.
	Caps(index dcap.Capability) int

	// PaletteUse reports the system palette sharing policy.
	PaletteUse() syspal.Use

	// SystemPaletteEntries reads entries from the OS-wide shared
	// palette, as opposed to a palette resource owned by the caller.
	// It returns the number of entries actually read.
	SystemPaletteEntries(start int, dst []Entry) int

	// NewPalette materializes a new palette resource from entries.
	// Every call yields a distinct resource.
	NewPalette(entries []Entry) (Palette, error)

	// SelectPalette selects p into the device's drawing context and
	// returns the previously selected palette.
	SelectPalette(p Palette, forceBackground bool) (Palette, error)

	// Realize maps the selected palette onto the hardware palette,
	// returning the number of entries realized.
	Realize() (int, error)
}
