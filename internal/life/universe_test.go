package life

import (
	"math/rand"
	"testing"
)

// allDead is a RandomSource that seeds every cell dead.
func allDead() float64 { return 1.0 }

// allAlive is a RandomSource that seeds every cell alive.
func allAlive() float64 { return 0.0 }

// deadUniverse returns a fully dead universe of the given dimensions.
func deadUniverse(t *testing.T, width, height int) *Universe {
	t.Helper()
	u := NewWithRandom(width, height, allDead)
	if u.Population() != 0 {
		t.Fatalf("expected dead universe, got population %d", u.Population())
	}
	return u
}

func TestNewDimensions(t *testing.T) {
	u := New(12, 7)

	if u.Width() != 12 {
		t.Errorf("Width() = %d, expected 12", u.Width())
	}
	if u.Height() != 7 {
		t.Errorf("Height() = %d, expected 7", u.Height())
	}
	if u.Size() != 84 {
		t.Errorf("Size() = %d, expected 84", u.Size())
	}
	if u.TicksPerUpdate() != 1 {
		t.Errorf("TicksPerUpdate() = %d, expected 1", u.TicksPerUpdate())
	}
}

func TestDefaultSize(t *testing.T) {
	u := Default()
	if u.Width() != DefaultSize || u.Height() != DefaultSize {
		t.Errorf("Default() is %dx%d, expected %dx%d",
			u.Width(), u.Height(), DefaultSize, DefaultSize)
	}
}

func TestTickDeterminism(t *testing.T) {
	// Two universes built from the same seed must evolve identically.
	seed := int64(12345)
	u1 := NewWithRandom(40, 30, rand.New(rand.NewSource(seed)).Float64)
	u2 := NewWithRandom(40, 30, rand.New(rand.NewSource(seed)).Float64)

	if !u1.GetCells().Equal(u2.GetCells()) {
		t.Fatal("identical seeds produced different initial states")
	}

	for i := 0; i < 10; i++ {
		u1.Tick()
		u2.Tick()
		if !u1.GetCells().Equal(u2.GetCells()) {
			t.Fatalf("states diverged after tick %d", i+1)
		}
	}
}

func TestToroidalNeighborCount(t *testing.T) {
	// A lone live cell at (0,0) is a neighbor of exactly the eight cells
	// that reach it through the wrap.
	const w, h = 5, 4
	u := deadUniverse(t, w, h)
	u.SetCells([]Cell{{0, 0}})

	wrapped := [][2]int{
		{h - 1, w - 1}, {h - 1, 0}, {h - 1, 1},
		{0, w - 1}, {0, 1},
		{1, w - 1}, {1, 0}, {1, 1},
	}
	for _, rc := range wrapped {
		if got := u.liveNeighborCount(rc[0], rc[1]); got != 1 {
			t.Errorf("liveNeighborCount(%d, %d) = %d, expected 1", rc[0], rc[1], got)
		}
	}

	// The live cell itself does not count as its own neighbor.
	if got := u.liveNeighborCount(0, 0); got != 0 {
		t.Errorf("liveNeighborCount(0, 0) = %d, expected 0", got)
	}
}

func TestStableBlock(t *testing.T) {
	u := deadUniverse(t, 6, 6)
	block := []Cell{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	u.SetCells(block)

	before := u.GetCells().Clone()
	u.Tick()

	if !u.GetCells().Equal(before) {
		t.Error("2x2 block should be a still life")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	u := deadUniverse(t, 7, 7)
	u.SetCells([]Cell{{3, 2}, {3, 3}, {3, 4}})

	u.Tick()
	vertical := map[Cell]bool{{2, 3}: true, {3, 3}: true, {4, 3}: true}
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			if u.Alive(row, col) != vertical[Cell{row, col}] {
				t.Fatalf("after one tick, cell (%d, %d) alive=%v, expected %v",
					row, col, u.Alive(row, col), vertical[Cell{row, col}])
			}
		}
	}

	u.Tick()
	horizontal := map[Cell]bool{{3, 2}: true, {3, 3}: true, {3, 4}: true}
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			if u.Alive(row, col) != horizontal[Cell{row, col}] {
				t.Fatalf("after two ticks, cell (%d, %d) alive=%v, expected %v",
					row, col, u.Alive(row, col), horizontal[Cell{row, col}])
			}
		}
	}
}

func TestUpdateEqualsSequentialTicks(t *testing.T) {
	// An R-pentomino gives a few generations of non-trivial evolution.
	pentomino := []Cell{{4, 5}, {4, 6}, {5, 4}, {5, 5}, {6, 5}}

	u1 := deadUniverse(t, 16, 16)
	u1.SetCells(pentomino)
	u2 := deadUniverse(t, 16, 16)
	u2.SetCells(pentomino)

	u1.SetTicks(5)
	u1.Update()
	for i := 0; i < 5; i++ {
		u2.Tick()
	}

	if !u1.GetCells().Equal(u2.GetCells()) {
		t.Error("Update with ticks=5 should equal five sequential Ticks")
	}
	if u1.Generation() != 5 {
		t.Errorf("Generation() = %d after Update, expected 5", u1.Generation())
	}
}

func TestClearAndReset(t *testing.T) {
	u := NewWithRandom(10, 10, allAlive)
	if u.Population() != u.Size() {
		t.Fatalf("all-alive seed gave population %d of %d", u.Population(), u.Size())
	}

	u.Clear()
	if u.Population() != 0 {
		t.Errorf("Clear left %d live cells", u.Population())
	}

	u.Reset()
	if u.Population() != u.Size() {
		t.Errorf("Reset with all-alive source gave population %d of %d",
			u.Population(), u.Size())
	}
	if u.Generation() != 0 {
		t.Errorf("Generation() = %d after Reset, expected 0", u.Generation())
	}
}

func TestResizeAlwaysReseeds(t *testing.T) {
	// Count random draws: every resize branch must end in a full reseed,
	// including the same-total-size case.
	draws := 0
	counting := func() float64 {
		draws++
		return 1.0
	}

	u := NewWithRandom(8, 8, counting)
	if draws != 64 {
		t.Fatalf("construction drew %d values, expected 64", draws)
	}

	draws = 0
	u.SetWidth(10) // grow
	if u.Size() != 80 {
		t.Errorf("Size() = %d after SetWidth(10), expected 80", u.Size())
	}
	if draws != 80 {
		t.Errorf("grow drew %d values, expected 80", draws)
	}

	draws = 0
	u.SetHeight(4) // shrink
	if u.Size() != 40 {
		t.Errorf("Size() = %d after SetHeight(4), expected 40", u.Size())
	}
	if draws != 40 {
		t.Errorf("shrink drew %d values, expected 40", draws)
	}

	draws = 0
	u.SetWidth(10) // same total size
	if draws != 40 {
		t.Errorf("equal-size resize drew %d values, expected 40", draws)
	}
}

func TestCreateGliderExactCells(t *testing.T) {
	u := deadUniverse(t, 10, 10)
	u.CreateGlider(5, 5)

	expected := map[Cell]bool{
		{5, 3}: true, {5, 4}: true, {5, 5}: true,
		{4, 5}: true,
		{3, 4}: true,
	}
	if u.Population() != len(Glider) {
		t.Errorf("Population() = %d after glider, expected %d", u.Population(), len(Glider))
	}
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if u.Alive(row, col) != expected[Cell{row, col}] {
				t.Errorf("cell (%d, %d) alive=%v, expected %v",
					row, col, u.Alive(row, col), expected[Cell{row, col}])
			}
		}
	}
}

func TestStampWrapsAroundTorus(t *testing.T) {
	u := deadUniverse(t, 10, 10)
	u.CreateGlider(0, 0)

	expected := map[Cell]bool{
		{0, 8}: true, {0, 9}: true, {0, 0}: true,
		{9, 0}: true,
		{8, 9}: true,
	}
	for c := range expected {
		if !u.Alive(c.Row, c.Col) {
			t.Errorf("cell (%d, %d) should be alive after wrapped stamp", c.Row, c.Col)
		}
	}
	if u.Population() != len(Glider) {
		t.Errorf("Population() = %d, expected %d", u.Population(), len(Glider))
	}
}

func TestCreatePulsar(t *testing.T) {
	u := deadUniverse(t, 20, 20)
	u.CreatePulsar(9, 9)

	if u.Population() != len(Pulsar) {
		t.Fatalf("Population() = %d after pulsar, expected %d", u.Population(), len(Pulsar))
	}

	// Period-3 oscillator: three ticks return the original pattern.
	before := u.GetCells().Clone()
	u.Tick()
	if u.GetCells().Equal(before) {
		t.Error("pulsar should change after one tick")
	}
	u.Tick()
	u.Tick()
	if !u.GetCells().Equal(before) {
		t.Error("pulsar should return to its original pattern after three ticks")
	}
}

func TestStampIsNonDestructive(t *testing.T) {
	u := deadUniverse(t, 20, 20)
	u.SetCells([]Cell{{0, 0}})
	u.CreateGlider(10, 10)

	if !u.Alive(0, 0) {
		t.Error("stamping must not kill unrelated live cells")
	}
}

func TestToggleCellTwice(t *testing.T) {
	u := NewWithRandom(9, 9, rand.New(rand.NewSource(7)).Float64)
	before := u.GetCells().Clone()

	u.ToggleCell(4, 4)
	if u.Alive(4, 4) == before.Test(u.index(4, 4)) {
		t.Error("first toggle should flip the cell")
	}

	u.ToggleCell(4, 4)
	if !u.GetCells().Equal(before) {
		t.Error("double toggle should restore the original state everywhere")
	}
}

func TestToggleCellOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ToggleCell out of range should panic")
		}
	}()

	u := deadUniverse(t, 5, 5)
	u.ToggleCell(5, 0)
}

func TestCellsWordView(t *testing.T) {
	u := deadUniverse(t, 8, 8)
	u.SetCells([]Cell{{0, 0}, {0, 7}}) // bits 0 and 7 of the first word

	words := u.Cells()
	if len(words) == 0 {
		t.Fatal("Cells() returned no words")
	}
	if words[0]&1 == 0 {
		t.Error("bit 0 should be set in the raw word view")
	}
	if words[0]&(1<<7) == 0 {
		t.Error("bit 7 should be set in the raw word view")
	}
}
