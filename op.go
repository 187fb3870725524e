package bmpproc

import (
	"errors"
	"fmt"
)

// Op identifies one of the built-in transforms.
type Op int

const (
	OpVignette Op = iota + 1
	OpClarendon
	OpGrayscale
	OpRotate90
	OpRotate
	OpEnlarge
	OpHighContrast
	OpLighten
	OpDarken
	OpQuantize
)

var opNames = map[Op]string{
	OpVignette:     "vignette",
	OpClarendon:    "clarendon",
	OpGrayscale:    "grayscale",
	OpRotate90:     "rotate90",
	OpRotate:       "rotate",
	OpEnlarge:      "enlarge",
	OpHighContrast: "highcontrast",
	OpLighten:      "lighten",
	OpDarken:       "darken",
	OpQuantize:     "quantize",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp resolves an operation name as used by CLI tooling.
func ParseOp(name string) (Op, error) {
	for op, s := range opNames {
		if s == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// Apply runs op on im with the given parameters and returns a fresh result
// grid; the input is never modified. Operations that take no parameters
// ignore p except for Clamp.
func Apply(op Op, im *Image, p Params) (*Image, error) {
	if im == nil || im.Width < 1 || im.Height < 1 {
		return nil, errors.New("apply: empty image")
	}
	switch op {
	case OpVignette:
		return vignette(im, p.Clamp), nil
	case OpClarendon:
		return clarendon(im, p.Factor, p.Clamp), nil
	case OpGrayscale:
		return Grayscale(im), nil
	case OpRotate90:
		return Rotate90(im), nil
	case OpRotate:
		return Rotate(im, p.Turns), nil
	case OpEnlarge:
		out, err := Enlarge(im, p.XScale, p.YScale)
		if err != nil {
			return nil, fmt.Errorf("apply: %w", err)
		}
		return out, nil
	case OpHighContrast:
		return HighContrast(im), nil
	case OpLighten:
		return lighten(im, p.Factor, p.Clamp), nil
	case OpDarken:
		return darken(im, p.Factor, p.Clamp), nil
	case OpQuantize:
		return Quantize(im), nil
	default:
		return nil, fmt.Errorf("apply: unknown operation %d", int(op))
	}
}
