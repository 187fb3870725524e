package bmpproc

import (
	"fmt"
	"math"
)

// narrow converts a channel result to 8 bits. The default behavior wraps
// out-of-range values exactly like a narrowing assignment to an unsigned
// byte; clamp saturates instead.
func narrow(v int, clamp bool) uint8 {
	if clamp {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
	}
	return uint8(v)
}

// Vignette darkens the image towards its corners.
func Vignette(im *Image) *Image { return vignette(im, false) }

func vignette(im *Image, clamp bool) *Image {
	out := New(im.Width, im.Height)
	cx, cy := im.Width/2, im.Height/2
	for row := 0; row < im.Height; row++ {
		for col := 0; col < im.Width; col++ {
			d := math.Sqrt(float64((col-cx)*(col-cx) + (row-cy)*(row-cy)))
			factor := (float64(im.Height) - d) / float64(im.Height)
			p := im.At(row, col)
			out.Set(row, col, Pixel{
				R: narrow(int(float64(p.R)*factor), clamp),
				G: narrow(int(float64(p.G)*factor), clamp),
				B: narrow(int(float64(p.B)*factor), clamp),
			})
		}
	}
	return out
}

// Clarendon pushes light pixels lighter and dark pixels darker. A pixel is
// light when the truncated channel mean is at least 170 and dark when it is
// below 90; anything in between is copied unchanged.
func Clarendon(im *Image, factor float64) *Image { return clarendon(im, factor, false) }

func clarendon(im *Image, f float64, clamp bool) *Image {
	out := New(im.Width, im.Height)
	for i, p := range im.Pix {
		avg := (int(p.R) + int(p.G) + int(p.B)) / 3
		switch {
		case avg >= 170:
			out.Pix[i] = Pixel{
				R: narrow(int(255-(255-float64(p.R))*f), clamp),
				G: narrow(int(255-(255-float64(p.G))*f), clamp),
				B: narrow(int(255-(255-float64(p.B))*f), clamp),
			}
		case avg < 90:
			out.Pix[i] = Pixel{
				R: narrow(int(float64(p.R)*f), clamp),
				G: narrow(int(float64(p.G)*f), clamp),
				B: narrow(int(float64(p.B)*f), clamp),
			}
		default:
			out.Pix[i] = p
		}
	}
	return out
}

// Grayscale replaces every channel with the truncated channel mean.
func Grayscale(im *Image) *Image {
	out := New(im.Width, im.Height)
	for i, p := range im.Pix {
		g := uint8((int(p.R) + int(p.G) + int(p.B)) / 3)
		out.Pix[i] = Pixel{R: g, G: g, B: g}
	}
	return out
}

// Rotate90 rotates the image a quarter turn clockwise; the output has
// swapped dimensions.
func Rotate90(im *Image) *Image {
	out := New(im.Height, im.Width)
	for row := 0; row < im.Height; row++ {
		for col := 0; col < im.Width; col++ {
			out.Set(col, im.Height-1-row, im.At(row, col))
		}
	}
	return out
}

// Rotate applies turns clockwise quarter turns. Negative counts rotate
// counter-clockwise; a zero net rotation returns a fresh copy.
func Rotate(im *Image, turns int) *Image {
	n := ((turns % 4) + 4) % 4
	if n == 0 {
		out := New(im.Width, im.Height)
		copy(out.Pix, im.Pix)
		return out
	}
	out := im
	for i := 0; i < n; i++ {
		out = Rotate90(out)
	}
	return out
}

// Enlarge upsamples the image by integer factors using nearest-neighbor
// sampling. Factors below one are rejected.
func Enlarge(im *Image, xScale, yScale int) (*Image, error) {
	if xScale < 1 || yScale < 1 {
		return nil, fmt.Errorf("scale factors must be positive, got %dx%d", xScale, yScale)
	}
	out := New(im.Width*xScale, im.Height*yScale)
	for row := 0; row < out.Height; row++ {
		for col := 0; col < out.Width; col++ {
			out.Set(row, col, im.At(row/yScale, col/xScale))
		}
	}
	return out, nil
}

// HighContrast maps every pixel to pure white or pure black. A truncated
// channel mean of 127 is already white.
func HighContrast(im *Image) *Image {
	out := New(im.Width, im.Height)
	for i, p := range im.Pix {
		gray := (int(p.R) + int(p.G) + int(p.B)) / 3
		if gray >= 255/2 {
			out.Pix[i] = Pixel{R: 255, G: 255, B: 255}
		} else {
			out.Pix[i] = Pixel{}
		}
	}
	return out
}

// Lighten scales every channel towards white by the given factor.
func Lighten(im *Image, factor float64) *Image { return lighten(im, factor, false) }

func lighten(im *Image, f float64, clamp bool) *Image {
	out := New(im.Width, im.Height)
	for i, p := range im.Pix {
		out.Pix[i] = Pixel{
			R: narrow(int(255-(255-float64(p.R))*f), clamp),
			G: narrow(int(255-(255-float64(p.G))*f), clamp),
			B: narrow(int(255-(255-float64(p.B))*f), clamp),
		}
	}
	return out
}

// Darken scales every channel towards black by the given factor.
func Darken(im *Image, factor float64) *Image { return darken(im, factor, false) }

func darken(im *Image, f float64, clamp bool) *Image {
	out := New(im.Width, im.Height)
	for i, p := range im.Pix {
		out.Pix[i] = Pixel{
			R: narrow(int(float64(p.R)*f), clamp),
			G: narrow(int(float64(p.G)*f), clamp),
			B: narrow(int(float64(p.B)*f), clamp),
		}
	}
	return out
}

// Quantize reduces the image to pure white, black, red, green and blue.
// Bright pixels (channel sum >= 550) become white, dark ones (sum < 150)
// black; otherwise the strictly largest channel wins, with blue as the
// fallback on ties.
func Quantize(im *Image) *Image {
	out := New(im.Width, im.Height)
	for i, p := range im.Pix {
		r, g, b := int(p.R), int(p.G), int(p.B)
		sum := r + g + b
		switch {
		case sum >= 550:
			out.Pix[i] = Pixel{R: 255, G: 255, B: 255}
		case sum < 150:
			out.Pix[i] = Pixel{}
		case r > g && r > b:
			out.Pix[i] = Pixel{R: 255}
		case g > r && g > b:
			out.Pix[i] = Pixel{G: 255}
		default:
			out.Pix[i] = Pixel{B: 255}
		}
	}
	return out
}
