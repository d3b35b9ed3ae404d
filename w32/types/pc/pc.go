package pc

// Flag controls how the palette manager treats a single palette entry.
// The zero value marks an ordinary entry that may be matched exactly
// against a system static color.
type Flag uint8

// https://msdn.microsoft.com/en-us/library/windows/desktop/dd162769(v=vs.85).aspx
const (
	Static     Flag = 0x00
	Reserved   Flag = 0x01 // entry is reserved for palette animation
	Explicit   Flag = 0x02 // entry names a hardware palette index directly
	NoCollapse Flag = 0x04 // map to an unused slot, never merge with a static color
)
