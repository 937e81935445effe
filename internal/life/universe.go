// Package life implements Conway's Game of Life on a toroidal, bit-packed
// grid. The package contains pure simulation logic with no rendering or
// terminal dependencies; hosts consume it through the Universe API and
// supply the random source used for seeding.
package life

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bits-and-blooms/bitset"
)

// RandomSource yields uniform values in [0, 1). It is the engine's only
// external dependency and is consulted exclusively by Reset.
type RandomSource func() float64

// Cell addresses a single grid position in row-major order.
type Cell struct {
	Row, Col int
}

// DefaultSize is the edge length used by Default.
const DefaultSize = 64

// Universe is the simulation state: a width x height toroidal grid with one
// bit per cell, advanced synchronously by the fixed B3/S23 rule.
//
// Row/column arguments to the mutators must satisfy row < Height() and
// col < Width(); the tick loop itself performs no bounds checks.
//
// Resizing never preserves a recognizable board: changing either dimension
// invalidates every index-to-cell mapping, so SetWidth and SetHeight always
// finish with a full random reseed, even when the total size is unchanged.
type Universe struct {
	width          int
	height         int
	cells          *doubleBuffer
	ticksPerUpdate int
	generation     uint64
	random         RandomSource
}

// New creates a randomized universe of the given dimensions using a
// time-seeded random source. Dimensions must be positive; a zero dimension
// produces an empty grid whose neighbor lookups are undefined.
func New(width, height int) *Universe {
	return NewWithRandom(width, height, nil)
}

// NewWithRandom creates a randomized universe seeded from the provided
// source. A nil source falls back to a time-seeded math/rand generator.
func NewWithRandom(width, height int, random RandomSource) *Universe {
	if random == nil {
		random = rand.New(rand.NewSource(time.Now().UnixNano())).Float64
	}

	u := &Universe{
		width:          width,
		height:         height,
		cells:          newDoubleBuffer(uint(width * height)),
		ticksPerUpdate: 1,
		random:         random,
	}
	u.Reset()
	return u
}

// Default creates a randomized DefaultSize x DefaultSize universe.
func Default() *Universe {
	return New(DefaultSize, DefaultSize)
}

// Width returns the number of columns.
func (u *Universe) Width() int {
	return u.width
}

// Height returns the number of rows.
func (u *Universe) Height() int {
	return u.height
}

// Size returns the total cell count.
func (u *Universe) Size() int {
	return u.width * u.height
}

// Generation returns the number of ticks applied since the last reseed.
func (u *Universe) Generation() uint64 {
	return u.generation
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	return int(u.cells.read.Count())
}

// TicksPerUpdate returns the current Update multiplier.
func (u *Universe) TicksPerUpdate() int {
	return u.ticksPerUpdate
}

// SetTicks sets how many generations a single Update advances.
func (u *Universe) SetTicks(ticks int) {
	u.ticksPerUpdate = ticks
}

// Reset independently sets every cell alive with probability 0.5 and
// publishes the new configuration. The generation counter restarts.
func (u *Universe) Reset() {
	size := uint(u.Size())
	for i := uint(0); i < size; i++ {
		u.cells.set(i, u.random() < 0.5)
	}
	u.generation = 0
	u.cells.commit()
}

// Clear kills every cell.
func (u *Universe) Clear() {
	u.cells.clearAll()
	u.generation = 0
	u.cells.commit()
}

// SetWidth changes the column count and reseeds the universe.
func (u *Universe) SetWidth(width int) {
	u.width = width
	u.resetWithSize(width * u.height)
}

// SetHeight changes the row count and reseeds the universe.
func (u *Universe) SetHeight(height int) {
	u.height = height
	u.resetWithSize(u.width * height)
}

// resetWithSize adjusts storage to the new total size and reseeds.
// Growing keeps bit values at their existing linear indices (the added tail
// is zero); shrinking replaces storage outright. Either way the row length
// has changed underneath the old bits, so the board they encoded is gone
// and the terminal Reset always runs - including in the equal-size case.
func (u *Universe) resetWithSize(newSize int) {
	switch cur := u.cells.len(); {
	case uint(newSize) > cur:
		u.cells.grow(uint(newSize))
	case uint(newSize) < cur:
		u.cells.replace(uint(newSize))
	}
	u.Reset()
}

// Cells exposes the published bit buffer as raw 64-bit words, least
// significant bit first. The slice aliases live storage: treat it as
// read-only and do not hold it across a subsequent mutation.
func (u *Universe) Cells() []uint64 {
	return u.cells.read.Bytes()
}

// GetCells returns the published bit set. Like Cells, the result is a
// read-only view that the next mutation invalidates.
func (u *Universe) GetCells() *bitset.BitSet {
	return u.cells.read
}

// SetCells marks each listed cell alive, leaving all others untouched.
func (u *Universe) SetCells(cells []Cell) {
	u.cells.stage()
	for _, c := range cells {
		u.checkBounds(c.Row, c.Col)
		u.cells.insert(u.index(c.Row, c.Col))
	}
	u.cells.commit()
}

// Alive reports whether the cell at (row, col) is alive.
func (u *Universe) Alive(row, col int) bool {
	return u.cells.test(u.index(row, col))
}

// ToggleCell flips a single cell between alive and dead.
func (u *Universe) ToggleCell(row, col int) {
	u.checkBounds(row, col)
	u.cells.stage()
	u.cells.flip(u.index(row, col))
	u.cells.commit()
}

// Update advances the simulation by the configured number of ticks.
// Intermediate generations are not observable.
func (u *Universe) Update() {
	for i := 0; i < u.ticksPerUpdate; i++ {
		u.Tick()
	}
}

// Tick computes the next generation. Every cell's fate is decided from the
// published buffer while results accumulate in the scratch buffer, so the
// scan is a pure function of the pre-tick state.
func (u *Universe) Tick() {
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			idx := u.index(row, col)
			alive := u.cells.test(idx)
			neighbors := u.liveNeighborCount(row, col)

			next := alive
			switch {
			case alive && neighbors < 2:
				next = false // underpopulation
			case alive && neighbors > 3:
				next = false // overpopulation
			case !alive && neighbors == 3:
				next = true // birth
			}
			u.cells.set(idx, next)
		}
	}

	u.generation++
	u.cells.commit()
}

// Stamp sets the figure's cells alive around the (row, col) anchor.
// Offsets wrap around the torus via Euclidean modulo, so negative offsets
// and edge anchors are fine. Cells outside the figure are untouched.
func (u *Universe) Stamp(fig Figure, row, col int) {
	u.cells.stage()
	for _, off := range fig {
		r := mod(row+off.Row, u.height)
		c := mod(col+off.Col, u.width)
		u.cells.insert(u.index(r, c))
	}
	u.cells.commit()
}

// CreateGlider stamps a glider anchored at (row, col).
func (u *Universe) CreateGlider(row, col int) {
	u.Stamp(Glider, row, col)
}

// CreatePulsar stamps a pulsar centered at (row, col).
func (u *Universe) CreatePulsar(row, col int) {
	u.Stamp(Pulsar, row, col)
}

// index maps (row, col) to the flat bit index. Callers guarantee
// row < height and col < width.
func (u *Universe) index(row, col int) uint {
	return uint(row*u.width + col)
}

// liveNeighborCount sums the eight Moore neighbors of (row, col) with
// toroidal wrapping, reading the published buffer only.
func (u *Universe) liveNeighborCount(row, col int) int {
	north := row - 1
	if row == 0 {
		north = u.height - 1
	}
	south := row + 1
	if row == u.height-1 {
		south = 0
	}
	west := col - 1
	if col == 0 {
		west = u.width - 1
	}
	east := col + 1
	if col == u.width-1 {
		east = 0
	}

	count := 0
	neighbors := [8]uint{
		u.index(north, west), u.index(north, col), u.index(north, east),
		u.index(row, west), u.index(row, east),
		u.index(south, west), u.index(south, col), u.index(south, east),
	}
	for _, i := range neighbors {
		if u.cells.test(i) {
			count++
		}
	}
	return count
}

// checkBounds asserts the public-API precondition on cell coordinates.
func (u *Universe) checkBounds(row, col int) {
	if row < 0 || row >= u.height || col < 0 || col >= u.width {
		panic(fmt.Sprintf("life: cell (%d, %d) out of range for %dx%d universe",
			row, col, u.width, u.height))
	}
}

// mod is the Euclidean (always non-negative) remainder of a by m.
func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}
