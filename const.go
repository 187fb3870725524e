package bmpproc

const (
	fileHeaderSize   = 14
	infoHeaderSize   = 40
	pixelArrayOffset = fileHeaderSize + infoHeaderSize
)

// Byte offsets of the header fields read by the decoder.
const (
	offFileSize   = 2
	offPixelArray = 10
	offWidth      = 18
	offHeight     = 22
	offBitCount   = 28
)

// Fixed values written by the encoder.
const (
	colorPlanes    = 1
	bitsPerPixel   = 24
	compressionRGB = 0
	resolutionPPM  = 2835 // 72 DPI in pixels per meter
)
