// Package bmpproc reads and writes uncompressed 24-bit BMP images and
// applies a fixed set of per-pixel transforms.
//
// The codec reproduces the classic bottom-up BI_RGB layout byte for byte:
// decoding validates the declared file size against the padded scanline
// geometry, and encoding always emits a 54-byte header followed by
// 4-byte-aligned BGR scanlines. Transform arithmetic keeps the classic
// behavior of narrowing channel results to 8 bits without clamping; see
// Params for the opt-in clamped mode.
package bmpproc
