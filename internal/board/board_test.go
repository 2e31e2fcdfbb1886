package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(b *Board) int {
	total := 0
	for _, row := range b.Cells() {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func nonZero(b *Board) int {
	n := 0
	for _, row := range b.Cells() {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
	}{
		{name: "empty line", input: [Size]int{0, 0, 0, 0}, expected: [Size]int{0, 0, 0, 0}},
		{name: "no merge", input: [Size]int{2, 4, 8, 16}, expected: [Size]int{2, 4, 8, 16}},
		{name: "four equal", input: [Size]int{2, 2, 2, 2}, expected: [Size]int{4, 4, 0, 0}, score: 8},
		{name: "trailing pair", input: [Size]int{0, 0, 2, 2}, expected: [Size]int{4, 0, 0, 0}, score: 4},
		{name: "gap between pair", input: [Size]int{2, 0, 2, 0}, expected: [Size]int{4, 0, 0, 0}, score: 4},
		{name: "three equal", input: [Size]int{2, 2, 2, 0}, expected: [Size]int{4, 2, 0, 0}, score: 4},
		{name: "two pairs", input: [Size]int{4, 4, 8, 8}, expected: [Size]int{8, 16, 0, 0}, score: 24},
		{name: "merged tile does not merge again", input: [Size]int{4, 2, 2, 0}, expected: [Size]int{4, 4, 0, 0}, score: 4},
		{name: "slide only", input: [Size]int{0, 0, 0, 2}, expected: [Size]int{2, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := tt.input
			score := collapse(&line)
			assert.Equal(t, tt.expected, line)
			assert.Equal(t, tt.score, score)
		})
	}
}

func TestBoard_Move(t *testing.T) {
	start := [Size][Size]int{
		{2, 2, 2, 2},
		{0, 0, 2, 2},
		{4, 0, 0, 4},
		{0, 8, 0, 0},
	}

	tests := []struct {
		dir      Direction
		expected [Size][Size]int
		score    int
	}{
		{
			dir: Left,
			expected: [Size][Size]int{
				{4, 4, 0, 0},
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{8, 0, 0, 0},
			},
			score: 20,
		},
		{
			dir: Right,
			expected: [Size][Size]int{
				{0, 0, 4, 4},
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 0, 8},
			},
			score: 20,
		},
		{
			dir: Up,
			expected: [Size][Size]int{
				{2, 2, 4, 4},
				{4, 8, 0, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 8,
		},
		{
			dir: Down,
			expected: [Size][Size]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 2, 0, 4},
				{4, 8, 4, 4},
			},
			score: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			// Given: a board with merges available in every direction
			b := NewFromCells(start, rand.New(rand.NewSource(1)))

			// When: moving
			changed := b.Move(tt.dir)

			// Then: the grid collapses toward the leading edge
			require.True(t, changed)
			assert.Equal(t, tt.expected, b.Cells())
			assert.Equal(t, tt.score, b.Score())
		})
	}
}

func TestBoard_MoveNoChange(t *testing.T) {
	b := NewFromCells([Size][Size]int{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, rand.New(rand.NewSource(1)))
	before := b.Cells()

	assert.False(t, b.Move(Left))
	assert.Equal(t, before, b.Cells())
	assert.Zero(t, b.Score())
}

func TestBoard_MovePackedRowWithoutMerge(t *testing.T) {
	b := NewFromCells([Size][Size]int{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, rand.New(rand.NewSource(1)))

	assert.False(t, b.Move(Left))
	assert.False(t, b.Move(Right))
	assert.True(t, b.Move(Down))
}

func TestBoard_MoveConservesMass(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New(rng)

	for i := 0; i < 500 && b.CanMove(); i++ {
		dir := Directions[rng.Intn(len(Directions))]
		sumBefore, scoreBefore := sum(b), b.Score()

		if b.Move(dir) {
			require.Equal(t, sumBefore, sum(b), "move %d (%s) changed tile mass", i, dir)
			require.GreaterOrEqual(t, b.Score(), scoreBefore)
			b.SpawnTile()
		} else {
			require.Equal(t, scoreBefore, b.Score())
		}

		for _, row := range b.Cells() {
			for _, v := range row {
				require.True(t, v == 0 || (v >= 2 && v&(v-1) == 0), "tile %d is not a power of two", v)
			}
		}
	}
}

func TestBoard_SpawnTile(t *testing.T) {
	t.Run("two spawns on empty grid", func(t *testing.T) {
		b := NewFromCells([Size][Size]int{}, rand.New(rand.NewSource(3)))

		require.True(t, b.SpawnTile())
		require.True(t, b.SpawnTile())

		assert.Equal(t, 2, nonZero(b))
		for _, row := range b.Cells() {
			for _, v := range row {
				assert.Contains(t, []int{0, 2, 4}, v)
			}
		}
	})

	t.Run("full grid is a no-op", func(t *testing.T) {
		full := [Size][Size]int{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		}
		b := NewFromCells(full, rand.New(rand.NewSource(3)))

		assert.False(t, b.SpawnTile())
		assert.Equal(t, full, b.Cells())
	})

	t.Run("mostly twos", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		fours := 0
		const runs = 2000
		for i := 0; i < runs; i++ {
			b := NewFromCells([Size][Size]int{}, rng)
			b.SpawnTile()
			if b.MaxTile() == 4 {
				fours++
			}
		}
		assert.InDelta(t, FourChance, float64(fours)/runs, 0.03)
	})
}

func TestNew(t *testing.T) {
	b := New(rand.New(rand.NewSource(42)))

	assert.Equal(t, 2, nonZero(b))
	assert.Zero(t, b.Score())
	assert.True(t, b.CanMove())
}

func TestBoard_CanMove(t *testing.T) {
	tests := []struct {
		name     string
		cells    [Size][Size]int
		expected bool
	}{
		{
			name: "empty cell",
			cells: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 0, 4},
				{4, 2, 4, 2},
			},
			expected: true,
		},
		{
			name: "horizontal pair",
			cells: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 2, 8},
			},
			expected: true,
		},
		{
			name: "vertical pair",
			cells: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 8},
				{4, 2, 4, 8},
			},
			expected: true,
		},
		{
			name: "checkerboard",
			cells: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromCells(tt.cells, nil)
			assert.Equal(t, tt.expected, b.CanMove())

			// CanMove agrees with trying every direction on a copy.
			anyChange := false
			for _, dir := range Directions {
				probe := NewFromCells(tt.cells, nil)
				anyChange = anyChange || probe.Move(dir)
			}
			assert.Equal(t, tt.expected, anyChange)
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		got, ok := ParseDirection(dir.String())
		require.True(t, ok)
		assert.Equal(t, dir, got)
	}

	got, ok := ParseDirection(" LEFT ")
	require.True(t, ok)
	assert.Equal(t, Left, got)

	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
}

func TestBoard_String(t *testing.T) {
	b := NewFromCells([Size][Size]int{{2048}}, nil)
	assert.Contains(t, b.String(), " 2048 |")
}
