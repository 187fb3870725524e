package bmpproc

import (
	"reflect"
	"testing"
)

func TestParseOpRoundTrip(t *testing.T) {
	ops := []Op{
		OpVignette, OpClarendon, OpGrayscale, OpRotate90, OpRotate,
		OpEnlarge, OpHighContrast, OpLighten, OpDarken, OpQuantize,
	}
	for _, op := range ops {
		got, err := ParseOp(op.String())
		if err != nil {
			t.Fatalf("parse %q: %v", op.String(), err)
		}
		if got != op {
			t.Fatalf("parse %q = %v, want %v", op.String(), got, op)
		}
	}
	if _, err := ParseOp("sepia"); err == nil {
		t.Fatalf("unknown operation name accepted")
	}
	if got := Op(42).String(); got != "Op(42)" {
		t.Fatalf("Op(42).String() = %q", got)
	}
}

func TestApplyMatchesDirectCalls(t *testing.T) {
	im := testImage(4, 3)
	enlarged, err := Enlarge(im, 2, 3)
	if err != nil {
		t.Fatalf("enlarge: %v", err)
	}
	cases := []struct {
		op     Op
		params Params
		want   *Image
	}{
		{OpVignette, Params{}, Vignette(im)},
		{OpClarendon, Params{Factor: 0.5}, Clarendon(im, 0.5)},
		{OpGrayscale, Params{}, Grayscale(im)},
		{OpRotate90, Params{}, Rotate90(im)},
		{OpRotate, Params{Turns: -3}, Rotate(im, -3)},
		{OpEnlarge, Params{XScale: 2, YScale: 3}, enlarged},
		{OpHighContrast, Params{}, HighContrast(im)},
		{OpLighten, Params{Factor: 0.5}, Lighten(im, 0.5)},
		{OpDarken, Params{Factor: 0.5}, Darken(im, 0.5)},
		{OpQuantize, Params{}, Quantize(im)},
	}
	for _, tc := range cases {
		got, err := Apply(tc.op, im, tc.params)
		if err != nil {
			t.Fatalf("apply %v: %v", tc.op, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("apply %v differs from the direct call", tc.op)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	im := testImage(2, 2)
	if _, err := Apply(OpGrayscale, nil, Params{}); err == nil {
		t.Fatalf("nil image accepted")
	}
	if _, err := Apply(OpGrayscale, &Image{}, Params{}); err == nil {
		t.Fatalf("empty image accepted")
	}
	if _, err := Apply(Op(99), im, Params{}); err == nil {
		t.Fatalf("unknown operation accepted")
	}
	if _, err := Apply(OpEnlarge, im, Params{XScale: 0, YScale: 1}); err == nil {
		t.Fatalf("zero enlarge factor accepted")
	}
}
