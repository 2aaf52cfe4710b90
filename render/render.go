// Package render turns a collapsed (or mid-run) wave.Wave into a standard
// image.Image, by letting the caller supply the two pure functions that
// decide what a cell's block of pixels actually looks like: Blend (how to
// reduce several still-possible tiles to one) and a Data-to-color.Color
// mapping.
package render

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/wfc/wave"
)

// Blend reduces the data values of every tile still possible at one pixel
// position within a cell to the single value that position renders as.
// Called once per pixel position per cell; for a fully collapsed cell,
// remaining has length 1 and blend should just return it unchanged.
type Blend[Data comparable] func(remaining []Data) Data

// Options controls ToImage's layout.
type Options struct {
	// Debug adds a 1-pixel border around every cell block, making cell
	// boundaries visible in a mid-run or contradiction snapshot.
	Debug bool
	// BorderColor is the debug border's color. Ignored unless Debug is set.
	// Defaults to opaque black if left zero-valued.
	BorderColor color.Color
}

// ToImage composes every cell of w into one image.Image, row-major, each
// cell contributing an N x N block (N+2 square with Debug's border). Cell
// (row, col) lands at output pixel (col*stride, row*stride) per §4.H.
//
// blend is invoked once per pixel position within a cell's pattern, over
// the Data values every tile still remaining in that cell holds at that
// position; toColor then maps blend's result to the color actually drawn.
// Both must be pure and side-effect free — ToImage may call them in any
// order.
func ToImage[Data comparable](w *wave.Wave[Data], blend Blend[Data], toColor func(Data) color.Color, opts Options) (image.Image, error) {
	if w.Width <= 0 || w.Height <= 0 {
		return nil, fmt.Errorf("render: wave has non-positive dimensions %dx%d", w.Width, w.Height)
	}

	size := w.Tile(0).Pattern.Size
	if size <= 0 {
		return nil, fmt.Errorf("render: tile pattern size %d is not positive", size)
	}

	stride := size
	border := 0
	if opts.Debug {
		border = 1
		stride = size + 2
	}
	borderColor := opts.BorderColor
	if borderColor == nil {
		borderColor = color.Black
	}

	dst := image.NewRGBA(image.Rect(0, 0, w.Width*stride, w.Height*stride))

	for row := 0; row < w.Height; row++ {
		for col := 0; col < w.Width; col++ {
			cellIndex := row*w.Width + col
			block, err := renderCellBlock(w, cellIndex, blend, toColor, size, border, borderColor)
			if err != nil {
				return nil, fmt.Errorf("render: cell %d: %w", cellIndex, err)
			}

			origin := image.Pt(col*stride, row*stride)
			destRect := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(stride, stride))}
			xdraw.Draw(dst, destRect, block, image.Point{}, xdraw.Over)
		}
	}

	return dst, nil
}

// renderCellBlock builds the stride x stride image for one cell: the
// optional debug border plus the size x size blended pixel content.
func renderCellBlock[Data comparable](w *wave.Wave[Data], cellIndex int, blend Blend[Data], toColor func(Data) color.Color, size, border int, borderColor color.Color) (image.Image, error) {
	remaining := w.RemainingTiles(cellIndex)
	if len(remaining) == 0 {
		return nil, fmt.Errorf("cell has no remaining tiles")
	}

	stride := size + 2*border
	block := image.NewRGBA(image.Rect(0, 0, stride, stride))
	if border > 0 {
		xdraw.Draw(block, block.Bounds(), image.NewUniform(borderColor), image.Point{}, xdraw.Src)
	}

	patterns := make([][]Data, len(remaining))
	for i, tileID := range remaining {
		patterns[i] = w.Tile(tileID).Pattern.Data
	}

	vals := make([]Data, len(remaining))
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			pos := py*size + px
			for i, p := range patterns {
				vals[i] = p[pos]
			}
			block.Set(border+px, border+py, toColor(blend(vals)))
		}
	}

	return block, nil
}
