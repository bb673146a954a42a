package core

import "fmt"

// Pos is an offset hex coordinate: X is the column, Y the row.
// Y increases upward, so row 0 is the bottom of the board.
// Odd columns sit half a row lower than even ones.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Neighbor returns the adjacent position in direction d.
// The result depends only on p and d; it may lie outside any board.
func (p Pos) Neighbor(d Direction) Pos {
	even := p.X%2 == 0
	switch d {
	case DirUp:
		return Pos{p.X, p.Y + 1}
	case DirDown:
		return Pos{p.X, p.Y - 1}
	case DirLeftUp:
		if even {
			return Pos{p.X - 1, p.Y + 1}
		}
		return Pos{p.X - 1, p.Y}
	case DirLeftDown:
		if even {
			return Pos{p.X - 1, p.Y}
		}
		return Pos{p.X - 1, p.Y - 1}
	case DirRightUp:
		if even {
			return Pos{p.X + 1, p.Y + 1}
		}
		return Pos{p.X + 1, p.Y}
	case DirRightDown:
		if even {
			return Pos{p.X + 1, p.Y}
		}
		return Pos{p.X + 1, p.Y - 1}
	default:
		return p
	}
}

// Point is a presentation-space location.
type Point struct {
	X float64
	Y float64
}

// PixelLocation returns where a renderer should draw the cell at p.
// Even columns are raised by half a cell.
func PixelLocation(p Pos, spacing float64) Point {
	pt := Point{X: float64(p.X) * spacing, Y: float64(p.Y) * spacing}
	if p.X%2 == 0 {
		pt.Y += spacing / 2
	}
	return pt
}
