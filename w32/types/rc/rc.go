package rc

// RasterCap is the bit set returned by a RasterCaps capability query.
type RasterCap int32

// Raster capability constants
const (
	BitBlt     RasterCap = 0x0001
	Banding    RasterCap = 0x0002
	Scaling    RasterCap = 0x0004
	Bitmap64   RasterCap = 0x0008
	DIBitmap   RasterCap = 0x0080
	Palette    RasterCap = 0x0100
	DIBToDev   RasterCap = 0x0200
	BigFont    RasterCap = 0x0400
	StretchBlt RasterCap = 0x0800
	FloodFill  RasterCap = 0x1000
	StretchDIB RasterCap = 0x2000
)
