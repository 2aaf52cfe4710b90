// Package extract implements the exemplar extraction protocol: turning a
// raster exemplar into the weighted, deduplicated tile set a
// tileset.Set and adjacency.Index are built from.
package extract

import (
	"errors"

	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/tileset"
)

// ErrInvalidSize indicates a non-positive pattern window size.
var ErrInvalidSize = errors.New("extract: pattern size must be > 0")

// ErrEmptyExemplar indicates a zero-area exemplar (width or height <= 0).
var ErrEmptyExemplar = errors.New("extract: exemplar width and height must be > 0")

// Windows extracts every size x size window from a width x height exemplar,
// toroidally wrapped at the edges so a window straddling the border still
// samples real exemplar data rather than out-of-range pixels. at(x, y)
// reads one exemplar cell; Windows never calls it outside [0, width) x
// [0, height), having already reduced the wrap itself.
func Windows[Data comparable](width, height, size int, at func(x, y int) Data) ([]pattern.Pattern[Data], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyExemplar
	}

	out := make([]pattern.Pattern[Data], 0, width*height)
	data := make([]Data, size*size)
	for originY := 0; originY < height; originY++ {
		for originX := 0; originX < width; originX++ {
			for dy := 0; dy < size; dy++ {
				sy := (originY + dy) % height
				for dx := 0; dx < size; dx++ {
					sx := (originX + dx) % width
					data[dy*size+dx] = at(sx, sy)
				}
			}

			p, err := pattern.New(data)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}

	return out, nil
}

// FrequencyBag is an insertion-ordered multiset of patterns, keyed by
// content equality (pattern.Pattern.Key). Go map iteration order is
// undefined, so the bag keeps a parallel ordered slice to make Tiles'
// dense id assignment deterministic given deterministic insertion order.
type FrequencyBag[Data comparable] struct {
	order  []pattern.Pattern[Data]
	counts map[string]int
	index  map[string]int // key -> position in order
	total  int
}

// NewFrequencyBag returns an empty bag.
func NewFrequencyBag[Data comparable]() *FrequencyBag[Data] {
	return &FrequencyBag[Data]{
		counts: make(map[string]int),
		index:  make(map[string]int),
	}
}

// Insert adds one occurrence of p to the bag.
func (b *FrequencyBag[Data]) Insert(p pattern.Pattern[Data]) {
	key := p.Key()
	if _, seen := b.index[key]; !seen {
		b.index[key] = len(b.order)
		b.order = append(b.order, p)
	}
	b.counts[key]++
	b.total++
}

// Tiles dedups, assigns probability = count/total, and assigns dense ids
// in first-seen insertion order. Returns an error if the bag is empty
// (there is no valid probability to assign).
func (b *FrequencyBag[Data]) Tiles() ([]tileset.Tile[Data], error) {
	if b.total == 0 {
		return nil, errors.New("extract: frequency bag is empty")
	}

	tiles := make([]tileset.Tile[Data], len(b.order))
	for id, p := range b.order {
		count := b.counts[p.Key()]
		tiles[id] = tileset.Tile[Data]{
			Pattern:     p,
			Probability: float64(count) / float64(b.total),
			ID:          id,
		}
	}

	return tiles, nil
}

// BuildTiles composes Windows, Pattern.AllPermutations, and FrequencyBag to
// turn a decoded raster directly into tile data in one call: the primary
// entry point for a caller going straight from an exemplar to a tileset.
func BuildTiles[Data comparable](width, height, size int, at func(x, y int) Data) ([]tileset.Tile[Data], error) {
	windows, err := Windows(width, height, size, at)
	if err != nil {
		return nil, err
	}

	bag := NewFrequencyBag[Data]()
	for _, w := range windows {
		for _, perm := range w.AllPermutations() {
			bag.Insert(perm)
		}
	}

	return bag.Tiles()
}
