package bmpproc

import (
	"fmt"
	"os"
	"path/filepath"
)

// DecodeFile reads and decodes the BMP at path.
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	im, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return im, nil
}

// EncodeFile encodes the grid and writes it to path.
func EncodeFile(path string, im *Image) error {
	data, err := Encode(im)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(path), data, 0o644)
}
