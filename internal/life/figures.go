package life

// Offset is an anchor-relative (row, column) displacement.
type Offset struct {
	Row, Col int
}

// Figure is a stampable pattern: the set of cells, relative to an anchor,
// that become alive when the figure is drawn onto the universe.
type Figure []Offset

// Glider is the smallest spaceship; it travels diagonally with period 4.
// The anchor sits on its trailing corner.
var Glider = Figure{
	{0, -2}, {0, -1}, {0, 0},
	{-1, 0},
	{-2, -1},
}

// Pulsar is a period-3 oscillator of 48 cells, anchored on its center of
// symmetry. It needs roughly a 15x15 clear area to oscillate undisturbed.
var Pulsar = Figure{
	{6, -4}, {6, -3}, {6, -2}, {6, 2}, {6, 3}, {6, 4},
	{4, -6}, {4, -1}, {4, 1}, {4, 6},
	{3, -6}, {3, -1}, {3, 1}, {3, 6},
	{2, -6}, {2, -1}, {2, 1}, {2, 6},
	{1, -4}, {1, -3}, {1, -2}, {1, 2}, {1, 3}, {1, 4},
	{-6, -4}, {-6, -3}, {-6, -2}, {-6, 2}, {-6, 3}, {-6, 4},
	{-4, -6}, {-4, -1}, {-4, 1}, {-4, 6},
	{-3, -6}, {-3, -1}, {-3, 1}, {-3, 6},
	{-2, -6}, {-2, -1}, {-2, 1}, {-2, 6},
	{-1, -4}, {-1, -3}, {-1, -2}, {-1, 2}, {-1, 3}, {-1, 4},
}
