package bmpproc

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode parses an uncompressed bottom-up BMP byte stream into a pixel
// grid. 24 bits per pixel is the supported depth; 32 is tolerated with the
// alpha byte discarded. Any structural mismatch returns a nil image and an
// error.
func Decode(data []byte) (*Image, error) {
	if len(data) < pixelArrayOffset {
		return nil, errors.New("file shorter than BMP header")
	}
	if data[0] != 'B' || data[1] != 'M' {
		return nil, errors.New("missing BM magic")
	}

	fileSize := int(binary.LittleEndian.Uint32(data[offFileSize:]))
	start := int(binary.LittleEndian.Uint32(data[offPixelArray:]))
	width := int(int32(binary.LittleEndian.Uint32(data[offWidth:])))
	height := int(int32(binary.LittleEndian.Uint32(data[offHeight:])))
	bpp := int(binary.LittleEndian.Uint16(data[offBitCount:]))

	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported bit depth %d", bpp)
	}

	// Scanlines occupy multiples of four bytes.
	pixelBytes := bpp / 8
	scanline := width * pixelBytes
	padding := (4 - scanline%4) % 4

	// The declared file size must account for every padded scanline.
	// This catches both truncated files and malformed headers.
	if fileSize != start+(scanline+padding)*height {
		return nil, fmt.Errorf("declared size %d does not match pixel array geometry", fileSize)
	}
	if start < pixelArrayOffset || fileSize > len(data) {
		return nil, errors.New("pixel array out of bounds")
	}

	im := New(width, height)
	pos := start
	// The file stores the bottom row first; fill the grid from its last row.
	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			// Pixels are stored in blue, green, red order. The fourth
			// byte of a 32bpp pixel is alpha and is skipped.
			im.Set(row, col, Pixel{B: data[pos], G: data[pos+1], R: data[pos+2]})
			pos += pixelBytes
		}
		pos += padding
	}
	return im, nil
}
