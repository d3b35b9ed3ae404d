// +build windows

package w32

import (
	"syscall"
	"unsafe"

	"github.com/elliotmr/pal/w32/types/dcap"
	"github.com/elliotmr/pal/w32/types/syspal"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	procGetDC                   = moduser32.NewProc("GetDC")
	procReleaseDC               = moduser32.NewProc("ReleaseDC")
	procGetDeviceCaps           = modgdi32.NewProc("GetDeviceCaps")
	procGetSystemPaletteUse     = modgdi32.NewProc("GetSystemPaletteUse")
	procGetSystemPaletteEntries = modgdi32.NewProc("GetSystemPaletteEntries")
	procSelectPalette           = modgdi32.NewProc("SelectPalette")
	procRealizePalette          = modgdi32.NewProc("RealizePalette")
)

// DC wraps a GDI device context handle.
type DC struct {
	h windows.Handle
}

func (dc *DC) handle() windows.Handle {
	if dc == nil {
		return 0
	}
	return dc.h
}

// ScreenDC acquires a device context covering the whole screen. Every
// successful acquisition must be paired with a Release.
func ScreenDC() (*DC, error) {
	ret, _, err := procGetDC.Call(0)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return nil, errors.Wrap(err, "error calling user32")
		}
		return nil, syscall.EINVAL
	}
	return &DC{h: windows.Handle(ret)}, nil
}

// Release returns the device context to the system.
func (dc *DC) Release() error {
	ret, _, err := procReleaseDC.Call(0, uintptr(dc.handle()))
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return errors.Wrap(err, "error calling user32")
		}
		return syscall.EINVAL
	}
	return nil
}

// Caps answers a device capability query.
//
// https://msdn.microsoft.com/en-us/library/windows/desktop/dd144877(v=vs.85).aspx
func (dc *DC) Caps(index dcap.Capability) int {
	ret, _, _ := procGetDeviceCaps.Call(uintptr(dc.handle()), uintptr(index))
	return int(int32(ret))
}

// SystemPaletteUse reports the system palette sharing policy for the
// device.
func (dc *DC) SystemPaletteUse() syspal.Use {
	ret, _, _ := procGetSystemPaletteUse.Call(uintptr(dc.handle()))
	return syspal.Use(ret)
}

// SystemPaletteEntries reads entries from the system palette, as
// opposed to a logical palette owned by the caller. It returns the
// number of entries actually read.
func (dc *DC) SystemPaletteEntries(start int, dst []PaletteEntry) int {
	if len(dst) == 0 {
		return 0
	}
	ret, _, _ := procGetSystemPaletteEntries.Call(
		uintptr(dc.handle()),
		uintptr(start),
		uintptr(len(dst)),
		uintptr(unsafe.Pointer(&dst[0])),
	)
	return int(ret)
}

// SelectPalette selects p into the device context and returns the
// palette it replaced.
func (dc *DC) SelectPalette(p *Palette, forceBackground bool) (*Palette, error) {
	ret, _, err := procSelectPalette.Call(
		uintptr(dc.handle()),
		uintptr(p.handle()),
		uintptr(BoolToBOOL(forceBackground)),
	)
	if ret == 0 {
		if err.(syscall.Errno) != 0 {
			return nil, errors.Wrap(err, "error calling gdi32")
		}
		return nil, syscall.EINVAL
	}
	return &Palette{h: windows.Handle(ret)}, nil
}

// Realize maps the currently selected palette onto the hardware
// palette, returning the number of entries realized.
func (dc *DC) Realize() (int, error) {
	const gdiError = 0xFFFFFFFF
	ret, _, err := procRealizePalette.Call(uintptr(dc.handle()))
	if uint32(ret) == gdiError {
		if err.(syscall.Errno) != 0 {
			return 0, errors.Wrap(err, "error calling gdi32")
		}
		return 0, syscall.EINVAL
	}
	return int(ret), nil
}
