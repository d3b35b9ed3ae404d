package syspal

// Use is the system palette sharing policy reported by the host.
type Use uint32

// https://msdn.microsoft.com/en-us/library/windows/desktop/dd144873(v=vs.85).aspx
const (
	Error       Use = 0
	Static      Use = 1 // the device reserves static colors at both ends of the table
	NoStatic    Use = 2 // the full table is available to the application
	NoStatic256 Use = 3 // as NoStatic, without even the black and white reservations
)
