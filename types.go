package bmpproc

// Pixel is a single 24-bit RGB sample.
type Pixel struct {
	R, G, B uint8
}

// Image stores an RGB image as a flat row-major pixel grid.
// Row 0 is the top of the image, column 0 its left edge.
type Image struct {
	Width  int
	Height int
	Pix    []Pixel
}

// New returns a zeroed image of the given dimensions.
func New(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]Pixel, width*height)}
}

// At returns the pixel at the given row and column.
func (im *Image) At(row, col int) Pixel {
	return im.Pix[row*im.Width+col]
}

// Set stores p at the given row and column.
func (im *Image) Set(row, col int, p Pixel) {
	im.Pix[row*im.Width+col] = p
}

// Params carries the per-operation parameters used by Apply.
type Params struct {
	Factor float64 // scaling factor for clarendon, lighten and darken
	Turns  int     // quarter turns for rotate, may be negative
	XScale int     // horizontal enlarge factor, >= 1
	YScale int     // vertical enlarge factor, >= 1
	// Clamp saturates channel arithmetic at 0 and 255 instead of the
	// classic wraparound narrowing.
	Clamp bool
}
