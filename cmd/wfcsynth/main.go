// Command wfcsynth collapses an exemplar raster into a larger synthesised
// output image: decode an exemplar, extract its tile set, run the solver
// over a toroidal grid of cells, then render and encode the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/katalvlaran/wfc/adjacency"
	"github.com/katalvlaran/wfc/extract"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/render"
	"github.com/katalvlaran/wfc/tileset"
	"github.com/katalvlaran/wfc/wave"
)

// parsedArgs holds the parsed command line arguments.
type parsedArgs struct {
	in     string
	out    string
	n      int
	width  int
	height int
	seed   int64
	debug  bool
}

func main() {
	args := parseFlags()
	if err := run(args); err != nil {
		log.Fatalln(err)
	}
}

// parseFlags parses command line flags and returns the parsed args.
func parseFlags() parsedArgs {
	in := flag.String("in", "", "path to the exemplar image (png, jpeg, or bmp)")
	out := flag.String("out", "out.png", "path to write the synthesised png")
	n := flag.Int("n", 3, "pattern window size")
	width := flag.Int("width", 32, "output cell grid width")
	height := flag.Int("height", 32, "output cell grid height")
	seed := flag.Int64("seed", 0, "RNG seed (0 is a valid, deterministic seed)")
	debug := flag.Bool("debug", false, "draw a 1-pixel debug border around each cell")
	flag.Parse()

	return parsedArgs{
		in:     *in,
		out:    *out,
		n:      *n,
		width:  *width,
		height: *height,
		seed:   *seed,
		debug:  *debug,
	}
}

// pixel is the Data type the solver operates over: a comparable RGBA
// value, so two windows sampled from identical-looking exemplar regions
// dedupe into the same tile regardless of which pixel values happen to
// sit behind the alpha channel.
type pixel struct {
	R, G, B, A uint8
}

// run wires extract -> tileset -> adjacency -> wave -> render -> encode.
func run(args parsedArgs) error {
	exemplar, err := decodeExemplar(args.in)
	if err != nil {
		return fmt.Errorf("wfcsynth: %w", err)
	}

	tiles, err := buildTileset(exemplar, args.n)
	if err != nil {
		return fmt.Errorf("wfcsynth: %w", err)
	}

	idx := adjacency.New(tiles)

	w, err := wave.New(tiles, idx, args.width, args.height, wave.WithSeed(args.seed))
	if err != nil {
		return fmt.Errorf("wfcsynth: building wave: %w", err)
	}

	if err := w.Run(); err != nil {
		var contradiction *wave.ContradictionError
		if errors.As(err, &contradiction) {
			return fmt.Errorf("wfcsynth: contradiction at cell %d, no retry: %w", contradiction.CellIndex, err)
		}
		return fmt.Errorf("wfcsynth: %w", err)
	}

	img, err := render.ToImage[pixel](w, blendPixels, pixelToColor, render.Options{Debug: args.debug})
	if err != nil {
		return fmt.Errorf("wfcsynth: rendering: %w", err)
	}

	return encodePNG(args.out, img)
}

func decodeExemplar(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("missing -in exemplar path")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening exemplar: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding exemplar: %w", err)
	}

	return img, nil
}

// buildTileset extracts windows from exemplar and compiles them into a
// tileset.Set, unpacking extract.BuildTiles' []tileset.Tile into the
// parallel pattern/probability slices tileset.New expects (tileset.New
// assigns its own dense ids rather than trusting a caller-supplied one).
func buildTileset(exemplar image.Image, n int) (*tileset.Set[pixel], error) {
	bounds := exemplar.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	at := func(x, y int) pixel {
		r, g, b, a := exemplar.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		return pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	}

	tiles, err := extract.BuildTiles(width, height, n, at)
	if err != nil {
		return nil, fmt.Errorf("extracting tiles: %w", err)
	}

	patterns := make([]pattern.Pattern[pixel], len(tiles))
	probs := make([]float64, len(tiles))
	for i, tl := range tiles {
		patterns[i] = tl.Pattern
		probs[i] = tl.Probability
	}

	set, err := tileset.New(patterns, probs)
	if err != nil {
		return nil, fmt.Errorf("building tileset: %w", err)
	}

	return set, nil
}

// blendPixels averages the still-possible tile values at one output pixel
// position, so a mid-run or contradiction snapshot shows a visible blur
// where the solver hasn't committed rather than an arbitrary single tile.
func blendPixels(remaining []pixel) pixel {
	if len(remaining) == 1 {
		return remaining[0]
	}

	var r, g, b, a int
	for _, p := range remaining {
		r += int(p.R)
		g += int(p.G)
		b += int(p.B)
		a += int(p.A)
	}
	n := len(remaining)

	return pixel{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
		A: uint8(a / n),
	}
}

func pixelToColor(p pixel) color.Color {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

func encodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}

	return f.Close()
}
