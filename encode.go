package bmpproc

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Encode serializes the grid as an uncompressed 24-bit bottom-up BMP.
// Any non-empty rectangular image with matching buffer length encodes
// successfully and survives a Decode round trip unchanged.
func Encode(im *Image) ([]byte, error) {
	if im == nil || im.Width < 1 || im.Height < 1 {
		return nil, errors.New("empty image")
	}
	if len(im.Pix) != im.Width*im.Height {
		return nil, errors.New("pixel buffer does not match dimensions")
	}

	widthBytes := im.Width * 3
	padding := (4 - widthBytes%4) % 4
	scanline := widthBytes + padding
	arrayBytes := scanline * im.Height

	buf := bytes.NewBuffer(make([]byte, 0, pixelArrayOffset+arrayBytes))

	// BITMAPFILEHEADER
	buf.WriteString("BM")
	binary.Write(buf, binary.LittleEndian, uint32(pixelArrayOffset+arrayBytes))
	binary.Write(buf, binary.LittleEndian, uint16(0))
	binary.Write(buf, binary.LittleEndian, uint16(0))
	binary.Write(buf, binary.LittleEndian, uint32(pixelArrayOffset))

	// BITMAPINFOHEADER
	binary.Write(buf, binary.LittleEndian, uint32(infoHeaderSize))
	binary.Write(buf, binary.LittleEndian, int32(im.Width))
	binary.Write(buf, binary.LittleEndian, int32(im.Height))
	binary.Write(buf, binary.LittleEndian, uint16(colorPlanes))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerPixel))
	binary.Write(buf, binary.LittleEndian, uint32(compressionRGB))
	binary.Write(buf, binary.LittleEndian, uint32(arrayBytes))
	binary.Write(buf, binary.LittleEndian, int32(resolutionPPM))
	binary.Write(buf, binary.LittleEndian, int32(resolutionPPM))
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, uint32(0))

	// Pixel array: left to right, bottom row first, zero padding after
	// each scanline.
	pad := make([]byte, padding)
	for row := im.Height - 1; row >= 0; row-- {
		for col := 0; col < im.Width; col++ {
			p := im.At(row, col)
			buf.Write([]byte{p.B, p.G, p.R})
		}
		buf.Write(pad)
	}
	return buf.Bytes(), nil
}
