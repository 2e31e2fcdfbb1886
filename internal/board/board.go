package board

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Size is the width and height of the grid.
const Size = 4

// Direction of a move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every move in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts "up", "down", "left" or "right" (any case) into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	default:
		return 0, false
	}
}

// FourChance is the probability that a spawned tile is a 4 instead of a 2.
const FourChance = 0.1

type grid [Size][Size]int

// Board is the 4x4 grid plus the running score. It is mutated in place.
type Board struct {
	cells grid
	score int
	rng   *rand.Rand
}

// New returns a board with two tiles already spawned.
func New(rng *rand.Rand) *Board {
	b := NewFromCells([Size][Size]int{}, rng)
	b.SpawnTile()
	b.SpawnTile()
	return b
}

// NewFromCells returns a board with the given start position and zero score.
// A nil rng is replaced by a time-seeded source.
func NewFromCells(cells [Size][Size]int, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{cells: cells, rng: rng}
}

// Score returns the sum of every merged value so far.
func (b *Board) Score() int {
	return b.score
}

// Get returns the value at row, col. 0 means empty.
func (b *Board) Get(row, col int) int {
	return b.cells[row][col]
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Size][Size]int {
	return b.cells
}

// MaxTile returns the largest value on the board.
func (b *Board) MaxTile() int {
	best := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			best = max(best, b.cells[r][c])
		}
	}
	return best
}

// Move slides and merges every line toward dir and reports whether the grid changed.
func (b *Board) Move(dir Direction) bool {
	before := b.cells

	switch dir {
	case Left:
		b.score += b.cells.collapseRows(false)
	case Right:
		b.score += b.cells.collapseRows(true)
	case Up:
		b.cells = b.cells.transpose()
		b.score += b.cells.collapseRows(false)
		b.cells = b.cells.transpose()
	case Down:
		b.cells = b.cells.transpose()
		b.score += b.cells.collapseRows(true)
		b.cells = b.cells.transpose()
	}

	return b.cells != before
}

// SpawnTile writes a 2 or a 4 into a random empty cell.
// It returns false when the grid is full.
func (b *Board) SpawnTile() bool {
	empty := b.emptyCells()
	if len(empty) == 0 {
		return false
	}

	pos := empty[b.rng.Intn(len(empty))]
	value := 2
	if b.rng.Float64() < FourChance {
		value = 4
	}
	b.cells[pos[0]][pos[1]] = value
	return true
}

// CanMove reports whether any move would still change the grid.
func (b *Board) CanMove() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.cells[r][c]
			if v == 0 {
				return true
			}
			if c+1 < Size && v == b.cells[r][c+1] {
				return true
			}
			if r+1 < Size && v == b.cells[r+1][c] {
				return true
			}
		}
	}
	return false
}

func (b *Board) emptyCells() [][2]int {
	empty := make([][2]int, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == 0 {
				empty = append(empty, [2]int{r, c})
			}
		}
	}
	return empty
}

// String renders the grid as ASCII art.
func (b *Board) String() string {
	line := "+------+------+------+------+"
	var sb strings.Builder
	sb.WriteString(line + "\n")
	for r := 0; r < Size; r++ {
		sb.WriteString("|")
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == 0 {
				sb.WriteString("      |")
			} else {
				fmt.Fprintf(&sb, "%5d |", b.cells[r][c])
			}
		}
		sb.WriteString("\n" + line + "\n")
	}
	return sb.String()
}

// collapseRows collapses each row toward column 0, or toward the last
// column when reversed is set, and returns the score gained.
func (g *grid) collapseRows(reversed bool) int {
	score := 0
	for r := range g {
		line := g[r]
		if reversed {
			line = reverse(line)
		}
		score += collapse(&line)
		if reversed {
			line = reverse(line)
		}
		g[r] = line
	}
	return score
}

// collapse compacts, merges pairwise from index 0, and compacts again.
func collapse(line *[Size]int) int {
	compact(line)

	score := 0
	for i := 0; i < Size-1; i++ {
		if line[i] != 0 && line[i] == line[i+1] {
			line[i] *= 2
			line[i+1] = 0
			score += line[i]
		}
	}

	compact(line)
	return score
}

func compact(line *[Size]int) {
	w := 0
	for _, v := range line {
		if v != 0 {
			line[w] = v
			w++
		}
	}
	for ; w < Size; w++ {
		line[w] = 0
	}
}

func reverse(line [Size]int) [Size]int {
	return [Size]int{line[3], line[2], line[1], line[0]}
}

func (g grid) transpose() grid {
	var t grid
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			t[c][r] = g[r][c]
		}
	}
	return t
}
