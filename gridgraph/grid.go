// SPDX-License-Identifier: MIT

package gridgraph

// Connectivity selects which cells count as neighbors.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbors: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

var steps = map[Connectivity][][2]int{
	Conn4: {{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	Conn8: {{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}},
}

// Point is a cell: column X, row Y.
type Point struct {
	X, Y int
}

// GridOptions configures NewGridGraph.
type GridOptions struct {
	// LandThreshold is the smallest value of an open cell.
	LandThreshold int
	Conn          Connectivity
}

// DefaultGridOptions opens every cell with value >= 1, 4-connected.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1, Conn: Conn4}
}

// GridGraph is an immutable W×H grid seen as an implicit graph: open cells
// are vertices and neighboring open cells are adjacent. Cells are
// addressed by Point or by row-major index y*Width+x.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity
	LandThreshold int

	cells [][]int
	steps [][2]int
}

// NewGridGraph copies values into a new grid.
// values[y][x] is the cell in row y, column x.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	cells := make([][]int, len(values))
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = append([]int(nil), row...)
	}
	st, ok := steps[opts.Conn]
	if !ok {
		st = steps[Conn4]
		opts.Conn = Conn4
	}

	return &GridGraph{
		Width:         w,
		Height:        len(cells),
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		cells:         cells,
		steps:         st,
	}, nil
}

// FromLines reads a text map such as
//
//	#####
//	#..##
//	##..#
//
// where bytes equal to open are floor and the rest are wall. Lines must have
// equal length. The grid is 4-connected.
func FromLines(lines []string, open byte) (*GridGraph, error) {
	values := make([][]int, len(lines))
	for y, line := range lines {
		values[y] = make([]int, len(line))
		for x := range values[y] {
			if line[x] == open {
				values[y][x] = 1
			}
		}
	}

	return NewGridGraph(values, DefaultGridOptions())
}

// Value returns the original value at (x,y); (x,y) must be in bounds.
func (gg *GridGraph) Value(x, y int) int {
	return gg.cells[y][x]
}

// InBounds reports whether (x,y) lies on the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsOpen reports whether (x,y) lies on the grid and is not blocked.
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.cells[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx,dy) steps of the grid's connectivity in
// the order every search tries them.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return append([][2]int(nil), gg.steps...)
}

// Coordinate converts a row-major index to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// around calls fn with the index of every in-bounds neighbor of cell i.
func (gg *GridGraph) around(i int, fn func(j int)) {
	x, y := gg.Coordinate(i)
	for _, d := range gg.steps {
		if nx, ny := x+d[0], y+d[1]; gg.InBounds(nx, ny) {
			fn(gg.index(nx, ny))
		}
	}
}

func (gg *GridGraph) open(i int) bool {
	x, y := gg.Coordinate(i)

	return gg.cells[y][x] >= gg.LandThreshold
}
