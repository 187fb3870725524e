package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	bmpproc "github.com/anna8704/image-processing"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "apply":
		if err := runApply(os.Args[2:]); err != nil {
			fail(err)
		}
	case "scale":
		if err := runScale(os.Args[2:]); err != nil {
			fail(err)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: bmptool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  apply -op <name> -in input.bmp -out output.bmp [-f factor] [-n turns] [-x scale] [-y scale] [-clamp]")
	fmt.Fprintln(os.Stderr, "  scale -in input.bmp -out output.bmp -w 800 -h 600 [-interp nearest|bilinear|bicubic|mitchell|lanczos2|lanczos3]")
	fmt.Fprintln(os.Stderr, "  info  -in input.bmp")
	fmt.Fprintln(os.Stderr, "Operations: vignette, clarendon, grayscale, rotate90, rotate, enlarge, highcontrast, lighten, darken, quantize")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func checkExt(paths ...string) error {
	for _, p := range paths {
		if !strings.HasSuffix(p, ".bmp") {
			return fmt.Errorf("%s: filename must end in .bmp", p)
		}
	}
	return nil
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	opName := fs.String("op", "", "operation name")
	inPath := fs.String("in", "", "input BMP")
	outPath := fs.String("out", "", "output BMP")
	factor := fs.Float64("f", 1, "scaling factor for clarendon, lighten and darken")
	turns := fs.Int("n", 1, "quarter turns for rotate")
	xScale := fs.Int("x", 1, "horizontal enlarge factor")
	yScale := fs.Int("y", 1, "vertical enlarge factor")
	clamp := fs.Bool("clamp", false, "clamp channel arithmetic instead of wrapping")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *opName == "" || *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	if err := checkExt(*inPath, *outPath); err != nil {
		return err
	}
	op, err := bmpproc.ParseOp(*opName)
	if err != nil {
		return err
	}
	im, err := bmpproc.DecodeFile(*inPath)
	if err != nil {
		return err
	}
	out, err := bmpproc.Apply(op, im, bmpproc.Params{
		Factor: *factor,
		Turns:  *turns,
		XScale: *xScale,
		YScale: *yScale,
		Clamp:  *clamp,
	})
	if err != nil {
		return err
	}
	return bmpproc.EncodeFile(*outPath, out)
}

func runScale(args []string) error {
	fs := flag.NewFlagSet("scale", flag.ContinueOnError)
	inPath := fs.String("in", "", "input BMP")
	outPath := fs.String("out", "", "output BMP")
	width := fs.Int("w", 0, "target width")
	height := fs.Int("h", 0, "target height")
	interpName := fs.String("interp", "nearest", "interpolation kernel")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *width <= 0 || *height <= 0 {
		return errors.New("missing required arguments")
	}
	if err := checkExt(*inPath, *outPath); err != nil {
		return err
	}
	interp, err := bmpproc.ParseInterpolation(*interpName)
	if err != nil {
		return err
	}
	im, err := bmpproc.DecodeFile(*inPath)
	if err != nil {
		return err
	}
	out, err := bmpproc.Scale(im, uint(*width), uint(*height), interp)
	if err != nil {
		return err
	}
	return bmpproc.EncodeFile(*outPath, out)
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "input BMP")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	if err := checkExt(*inPath); err != nil {
		return err
	}
	im, err := bmpproc.DecodeFile(*inPath)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d pixels, 24-bit RGB\n", *inPath, im.Width, im.Height)
	return nil
}
