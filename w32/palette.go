// +build windows

package w32

import (
	"encoding/binary"
	"syscall"
	"unsafe"

	"github.com/elliotmr/pal/w32/types/pc"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	procCreatePalette     = modgdi32.NewProc("CreatePalette")
	procGetPaletteEntries = modgdi32.NewProc("GetPaletteEntries")
	procSetPaletteEntries = modgdi32.NewProc("SetPaletteEntries")
	procGetObject         = modgdi32.NewProc("GetObjectW")
	procDeleteObject      = modgdi32.NewProc("DeleteObject")
)

// Version is the palette format tag carried by every LOGPALETTE
// descriptor.
const Version = 0x300

// PaletteEntry mirrors the layout of the Win32 PALETTEENTRY structure.
//
// https://msdn.microsoft.com/en-us/library/windows/desktop/dd162769(v=vs.85).aspx
type PaletteEntry struct {
	Red   uint8
	Green uint8
	Blue  uint8
	Flags pc.Flag
}

// Palette wraps a GDI logical palette handle. The OS keeps its own
// copy of the descriptor passed at construction.
type Palette struct {
	h windows.Handle
}

func (p *Palette) handle() windows.Handle {
	if p == nil {
		return 0
	}
	return p.h
}

// CreatePalette materializes a new logical palette from entries. The
// LOGPALETTE descriptor is a 16-bit version, a 16-bit entry count, and
// the entries appended contiguously.
//
// https://msdn.microsoft.com/en-us/library/windows/desktop/dd183494(v=vs.85).aspx
func CreatePalette(entries []PaletteEntry) (*Palette, error) {
	buf := make([]byte, 4+4*len(entries))
	binary.LittleEndian.PutUint16(buf[0:], Version)
	binary.LittleEndian.PutUint16(buf[2:], uint16(len(entries)))
	for i, e := range entries {
		buf[4+4*i] = e.Red
		buf[5+4*i] = e.Green
		buf[6+4*i] = e.Blue
		buf[7+4*i] = uint8(e.Flags)
	}
	ret, _, err := procCreatePalette.Call(uintptr(unsafe.Pointer(&buf[0])))
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return nil, errors.Wrap(err, "error calling gdi32")
		}
		return nil, syscall.EINVAL
	}
	return &Palette{h: windows.Handle(ret)}, nil
}

// Count reports how many entries the palette holds.
func (p *Palette) Count() (int, error) {
	var n uint16
	ret, _, err := procGetObject.Call(
		uintptr(p.handle()),
		unsafe.Sizeof(n),
		uintptr(unsafe.Pointer(&n)),
	)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return 0, errors.Wrap(err, "error calling gdi32")
		}
		return 0, syscall.EINVAL
	}
	return int(n), nil
}

// Entries reads up to len(dst) entries starting at start, returning
// the number actually read.
func (p *Palette) Entries(start int, dst []PaletteEntry) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	ret, _, err := procGetPaletteEntries.Call(
		uintptr(p.handle()),
		uintptr(start),
		uintptr(len(dst)),
		uintptr(unsafe.Pointer(&dst[0])),
	)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return 0, errors.Wrap(err, "error calling gdi32")
		}
		return 0, syscall.EINVAL
	}
	return int(ret), nil
}

// SetEntries writes up to len(src) entries starting at start,
// returning the number actually written.
func (p *Palette) SetEntries(start int, src []PaletteEntry) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	ret, _, err := procSetPaletteEntries.Call(
		uintptr(p.handle()),
		uintptr(start),
		uintptr(len(src)),
		uintptr(unsafe.Pointer(&src[0])),
	)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return 0, errors.Wrap(err, "error calling gdi32")
		}
		return 0, syscall.EINVAL
	}
	return int(ret), nil
}

// Destroy releases the palette handle. The handle must not be
// selected into any device context when it is destroyed.
func (p *Palette) Destroy() error {
	ret, _, err := procDeleteObject.Call(uintptr(p.handle()))
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return errors.Wrap(err, "error calling gdi32")
		}
		return syscall.EINVAL
	}
	return nil
}
