// Package wave implements the solver's core loop: a toroidal grid of
// cells, each a superposition over a tileset.Set, reduced to a single
// tile per cell by repeated observe-then-propagate steps.
//
// Cells are mutated only by Step; a Wave is built once from an
// adjacency.Index and destroyed after the caller renders or discards it
// (see the render package). Step is single-threaded and does no I/O: a
// full step either returns Continue/Done, or a ContradictionError, and
// leaves the Wave in a well-defined, safe-to-inspect state either way.
package wave

import (
	"math/rand"

	"github.com/katalvlaran/wfc/adjacency"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/tileset"
)

// Progress reports whether a successful Step left uncollapsed cells.
type Progress int

const (
	// Continue means at least one cell remains uncollapsed.
	Continue Progress = iota
	// Done means every cell is now collapsed.
	Done
)

// event is a queued propagation event: tile was just eliminated from
// cellIndex, and neighbours must be notified.
type event struct {
	cellIndex int
	tile      int
}

// Wave is the grid the solver collapses. Width and Height are cell
// counts; the topology is toroidal in both axes (§3/§4.G).
type Wave[Data comparable] struct {
	tiles *tileset.Set[Data]
	idx   *adjacency.Index

	Width, Height int

	cells        []*cell
	numCollapsed int

	rng *rand.Rand

	// queue is the FIFO propagation queue, reused across Step calls via
	// front-slicing (queue = queue[1:]) rather than reallocating.
	queue []event
}

// New builds a Wave of Width x Height cells over tiles, using idx for
// seed support. Every cell starts identical: every tile present, support
// seeded from idx, entropy sums over every tile's probability.
func New[Data comparable](tiles *tileset.Set[Data], idx *adjacency.Index, width, height int, opts ...Option) (*Wave[Data], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	cfg := defaultConfig(opts)

	probs := make([]float64, tiles.Len())
	for _, t := range tiles.All() {
		probs[t.ID] = t.Probability
	}

	cells := make([]*cell, width*height)
	for i := range cells {
		cells[i] = newCell(idx, probs)
	}

	w := &Wave[Data]{
		tiles:  tiles,
		idx:    idx,
		Width:  width,
		Height: height,
		cells:  cells,
		rng:    rngFromSeed(cfg.seed),
	}

	// A single-tile set leaves every cell already collapsed (remainingCount
	// == 1 from the moment it's built, since there is nothing else it
	// could be); num_collapsed must reflect that immediately; otherwise
	// lowestEntropyCells would have no uncollapsed cell to report while
	// num_collapsed still claimed work remained.
	if tiles.Len() == 1 {
		w.numCollapsed = width * height
	}

	return w, nil
}

// NumCollapsed returns how many of the Width*Height cells currently hold
// exactly one tile.
func (w *Wave[Data]) NumCollapsed() int {
	return w.numCollapsed
}

// IsCollapsed reports whether every cell holds exactly one tile.
func (w *Wave[Data]) IsCollapsed() bool {
	return w.numCollapsed == w.Width*w.Height
}

// RemainingTiles returns the tile ids still possible at row-major index i,
// for the renderer to read. The returned slice is a fresh copy; it is
// safe for the caller to retain.
func (w *Wave[Data]) RemainingTiles(i int) []int {
	return w.cells[i].remainingTiles()
}

// Tile returns the underlying tileset.Tile for a tile id, so a renderer
// can map ids it read via RemainingTiles back to pixel data.
func (w *Wave[Data]) Tile(id int) tileset.Tile[Data] {
	return w.tiles.Tile(id)
}

// neighbor returns the row-major index of the cell adjacent to i in
// direction d, wrapping toroidally in both axes (§4.G).
func (w *Wave[Data]) neighbor(i int, d direction.Direction) int {
	row := i / w.Width
	col := i % w.Width

	switch d {
	case direction.N:
		return ((row+w.Height-1)%w.Height)*w.Width + col
	case direction.E:
		return row*w.Width + (col+1)%w.Width
	case direction.S:
		return ((row+1)%w.Height)*w.Width + col
	case direction.W:
		return row*w.Width + (col+w.Width-1)%w.Width
	default:
		panic("wave: invalid direction in neighbor()")
	}
}

// lowestEntropyCells returns the row-major indices of every uncollapsed
// cell sharing the minimum entropy, using a NaN-safe total order so a
// malformed probability distribution can never silently exclude a cell
// from observation (§4.F's numeric policy).
func (w *Wave[Data]) lowestEntropyCells() []int {
	var (
		best    float64
		bestSet bool
		out     []int
	)

	for i, c := range w.cells {
		if !c.isUncollapsed() {
			continue
		}
		e := c.entropy()
		switch {
		case !bestSet:
			best = e
			bestSet = true
			out = []int{i}
		case totalOrderLess(e, best):
			best = e
			out = []int{i}
		case !totalOrderLess(best, e):
			// e == best under the total order: tie.
			out = append(out, i)
		}
	}

	return out
}

// Step performs one observe-and-propagate cycle (§4.G):
//
//  1. If every cell is already collapsed, returns ErrAlreadyCollapsed.
//  2. Computes the lowest-entropy set among uncollapsed cells.
//  3. Picks one cell from that set uniformly at random.
//  4. Collapses it by weighted tile choice, seeding one propagation
//     event per tile thereby eliminated.
//  5. Drains the propagation queue breadth-first, in fixed {N,E,S,W}
//     fan-out order per event, cascading further eliminations.
//
// Returns Done once every cell is collapsed, Continue if cells remain,
// or a *ContradictionError the instant any cell's remaining set empties.
// Randomness is consumed in exactly two places, in this order: the
// uniform pick in step 3, then the weighted pick inside cell.collapse.
func (w *Wave[Data]) Step() (Progress, error) {
	total := w.Width * w.Height
	if w.numCollapsed == total {
		return Continue, ErrAlreadyCollapsed
	}

	lowest := w.lowestEntropyCells()
	if len(lowest) == 0 {
		panic("wave: internal invariant broken: no uncollapsed cell found for observation")
	}

	chosenIdx := lowest[w.rng.Intn(len(lowest))]
	eliminated := w.cells[chosenIdx].collapse(w.rng)
	w.numCollapsed++

	w.queue = w.queue[:0]
	for _, t := range eliminated {
		w.queue = append(w.queue, event{cellIndex: chosenIdx, tile: t})
	}

	for len(w.queue) > 0 {
		ev := w.queue[0]
		w.queue = w.queue[1:]

		for _, d := range direction.All() {
			j := w.neighbor(ev.cellIndex, d)
			neighborCell := w.cells[j]

			// Every tile compatible with the eliminated tile on this side
			// just lost one of its justifying neighbours in j; each such
			// tile's support must be told, not just the eliminated tile
			// itself (disjunctive-within-direction support, §9: a tile
			// stays valid while *any* compatible neighbour remains).
			for _, t := range w.idx.CompatibleTiles(ev.tile, d) {
				removedID, removed := neighborCell.onNeighborTileEliminated(t, d.Opposite())
				if !removed {
					continue
				}

				if neighborCell.isInvalid() {
					return Continue, &ContradictionError{CellIndex: j}
				}
				if neighborCell.isCollapsed() {
					w.numCollapsed++
				}

				w.queue = append(w.queue, event{cellIndex: j, tile: removedID})
			}
		}
	}

	if w.numCollapsed == total {
		return Done, nil
	}

	return Continue, nil
}

// Run drives Step until the Wave is fully collapsed or an error occurs.
// It is the standard driver loop described in §4.G: a contradiction is
// fatal at this level (no retry, no backtracking); a caller wanting retry
// policy builds it around Run, not inside it. A Wave that is already fully
// collapsed returns nil without calling Step.
func (w *Wave[Data]) Run() error {
	for !w.IsCollapsed() {
		progress, err := w.Step()
		if err != nil {
			return err
		}
		if progress == Done {
			return nil
		}
	}

	return nil
}
