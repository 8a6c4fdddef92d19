// Package fighter navigates a fighter selection screen.
//
// The screen is a grid of fighter names, with empty names marking gaps.
// The cursor wraps around horizontally, stops at the top and bottom rows,
// and always skips over gaps.
package fighter

import (
	"strings"

	"github.com/ezrec/katas/translate"
)

var f = translate.From

var ErrDirectionInvalid = translate.Error("direction invalid")

type ErrDirection string

func (err ErrDirection) Error() string {
	return f("'%v' %v", string(err), ErrDirectionInvalid)
}

func (err ErrDirection) Unwrap() error {
	return ErrDirectionInvalid
}

// Direction is a cursor move.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	UP    = Direction(0) // up
	DOWN  = Direction(1) // down
	LEFT  = Direction(2) // left
	RIGHT = Direction(3) // right
)

var directionMap = map[string]Direction{
	"up":    UP,
	"down":  DOWN,
	"left":  LEFT,
	"right": RIGHT,
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(name string) (d Direction, err error) {
	d, ok := directionMap[strings.ToLower(name)]
	if !ok {
		err = ErrDirection(name)
	}
	return
}

// Position of the cursor, as column X of row Y.
type Position struct {
	X int
	Y int
}

// Grid is the selection screen, indexed as Grid[y][x]. Rows may be ragged;
// missing cells are gaps.
type Grid [][]string

// Fighter returns the name at a position, or "" for a gap.
func (g Grid) Fighter(pos Position) string {
	if pos.Y < 0 || pos.Y >= len(g) {
		return ""
	}
	row := g[pos.Y]
	if pos.X < 0 || pos.X >= len(row) {
		return ""
	}
	return row[pos.X]
}

// Width of the widest row.
func (g Grid) Width() (width int) {
	for _, row := range g {
		width = max(width, len(row))
	}
	return
}

// Move the cursor one fighter in a direction.
//
// Left and right wrap around the row. Up and down stop at the edge of the
// grid, leaving the cursor where it was if there is no fighter that way.
func Move(g Grid, pos Position, d Direction) Position {
	switch d {
	case LEFT, RIGHT:
		step := 1
		if d == LEFT {
			step = -1
		}
		width := g.Width()
		next := pos
		for range width {
			next.X = ((next.X+step)%width + width) % width
			if g.Fighter(next) != "" {
				return next
			}
		}
	case UP, DOWN:
		step := 1
		if d == UP {
			step = -1
		}
		for next := (Position{X: pos.X, Y: pos.Y + step}); next.Y >= 0 && next.Y < len(g); next.Y += step {
			if g.Fighter(next) != "" {
				return next
			}
		}
	}

	return pos
}

// Selection returns the fighter under the cursor after each move.
// The starting fighter is not included.
func Selection(g Grid, pos Position, moves []Direction) (names []string) {
	names = make([]string, 0, len(moves))
	for _, d := range moves {
		pos = Move(g, pos, d)
		names = append(names, g.Fighter(pos))
	}
	return
}
