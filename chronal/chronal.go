// Package chronal measures the regions of a square grid that are closest to
// each of a set of coordinates under Manhattan distance.
package chronal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Coord is a grid position.
type Coord struct {
	X, Y int
}

// Dist returns the Manhattan distance between two coordinates.
func (c Coord) Dist(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CoordError is an error indicating a line of input that is not a pair of
// integers separated by a comma.
type CoordError struct {
	// Line is the 1-based input line.
	Line int
	// Text is the content of the line.
	Text string
}

func (err *CoordError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": malformed coordinate " + strconv.Quote(err.Text)
}

// Parse reads one "x, y" coordinate per line. Blank lines are ignored.
func Parse(r io.Reader) ([]Coord, error) {
	var coords []Coord
	scan := bufio.NewScanner(r)
	scan.Buffer(nil, math.MaxInt)
	n := 0
	for scan.Scan() {
		n++
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, &CoordError{Line: n, Text: line}
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, &CoordError{Line: n, Text: line}
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, &CoordError{Line: n, Text: line}
		}
		coords = append(coords, Coord{x, y})
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return coords, nil
}

// Tie marks a grid cell that is equally close to two or more coordinates.
const Tie = -1

// Grid records which coordinate claims each cell of a square grid.
type Grid struct {
	// Size is the width and height of the grid.
	Size int
	// Owner holds the index of the closest coordinate for each cell in
	// row-major order, or Tie.
	Owner []int
}

// Claim assigns each cell of a size×size grid to its closest coordinate.
func Claim(coords []Coord, size int) *Grid {
	if size < 0 {
		size = 0
	}
	g := Grid{Size: size, Owner: make([]int, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.Owner[y*size+x] = closest(coords, Coord{x, y})
		}
	}
	return &g
}

// closest finds the index of the unique closest coordinate to c, or Tie.
func closest(coords []Coord, c Coord) int {
	best, bd := Tie, -1
	for i, p := range coords {
		d := c.Dist(p)
		switch {
		case bd < 0 || d < bd:
			best, bd = i, d
		case d == bd:
			best = Tie
		}
	}
	return best
}

// At returns the owner of the cell at (x, y).
func (g *Grid) At(x, y int) int {
	return g.Owner[y*g.Size+x]
}

// Areas counts the cells claimed by each of n coordinates. A coordinate that
// claims any cell on the border of the grid would keep claiming cells
// forever past it, so it is marked infinite.
func (g *Grid) Areas(n int) (areas []int, infinite []bool) {
	areas = make([]int, n)
	infinite = make([]bool, n)
	last := g.Size - 1
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			k := g.At(x, y)
			if k == Tie {
				continue
			}
			areas[k]++
			if x == 0 || y == 0 || x == last || y == last {
				infinite[k] = true
			}
		}
	}
	return areas, infinite
}

// WriteTo renders the grid with each cell as the 1-based number of its
// owner, or * for ties. The count is of bytes accepted by w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if o := g.At(x, y); o == Tie {
				b.WriteString("  *")
			} else {
				fmt.Fprintf(&b, "%3d", o+1)
			}
		}
		b.WriteByte('\n')
	}
	return b.WriteTo(w)
}

// Region is the area claimed by one coordinate.
type Region struct {
	// Index is the position of the coordinate in the input.
	Index int
	Coord Coord
	Area  int
}

var (
	// ErrNoCoords is returned when there are no coordinates to claim cells.
	ErrNoCoords = errors.New("chronal: no coordinates")
	// ErrUnbounded is returned when every coordinate's region is infinite.
	ErrUnbounded = errors.New("chronal: every region is infinite")
)

// LargestFiniteArea finds the coordinate with the largest region that does
// not reach the border of a size×size grid. Among equal areas, the latest
// coordinate wins.
func LargestFiniteArea(coords []Coord, size int) (Region, error) {
	if len(coords) == 0 {
		return Region{}, ErrNoCoords
	}
	areas, infinite := Claim(coords, size).Areas(len(coords))
	best := Region{Index: -1}
	for i, a := range areas {
		if infinite[i] || a == 0 {
			continue
		}
		if a >= best.Area {
			best = Region{Index: i, Coord: coords[i], Area: a}
		}
	}
	if best.Index < 0 {
		return Region{}, ErrUnbounded
	}
	return best, nil
}

// SafeRegion counts the cells of a size×size grid whose total distance to all
// coordinates is less than limit.
func SafeRegion(coords []Coord, size, limit int) int {
	n := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := Coord{x, y}
			t := 0
			for _, p := range coords {
				t += c.Dist(p)
			}
			if t < limit {
				n++
			}
		}
	}
	return n
}
