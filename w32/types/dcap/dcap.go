package dcap

// Capability selects a device attribute for a device capability query.
type Capability int32

// https://msdn.microsoft.com/en-us/library/windows/desktop/dd144877(v=vs.85).aspx
const (
	DriverVersion Capability = 0
	Technology    Capability = 2
	HorzRes       Capability = 8
	VertRes       Capability = 10
	BitsPixel     Capability = 12
	Planes        Capability = 14
	NumColors     Capability = 24
	RasterCaps    Capability = 38
	SizePalette   Capability = 104
	NumReserved   Capability = 106
	ColorRes      Capability = 108
)
