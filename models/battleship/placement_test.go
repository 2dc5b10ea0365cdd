package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardWithShip returns a board holding one ship and the ship's cells.
func boardWithShip(t *testing.T, size, row, col, length int, o Orientation) (Board, []Coordinates) {
	t.Helper()
	board, positions := Place(NewBoard(size), row, col, length, o)
	return board, positions
}

func TestCanPlaceOverlapOnlyMatchesBruteForce(t *testing.T) {
	board, _ := boardWithShip(t, GridSizeStandard, 4, 4, 3, Horizontal)

	for length := 1; length <= 5; length++ {
		for _, o := range []Orientation{Horizontal, Vertical} {
			for row := -1; row <= GridSizeStandard; row++ {
				for col := -1; col <= GridSizeStandard; col++ {
					expected := true
					for i := 0; i < length; i++ {
						r, c := row, col+i
						if o == Vertical {
							r, c = row+i, col
						}
						if !board.InBounds(r, c) || board[r][c] == CellShip {
							expected = false
						}
					}

					got := CanPlace(board, row, col, length, o, PolicyOverlapOnly)
					if got != expected {
						t.Fatalf("CanPlace(%d, %d, len %d, %s) = %t, want %t", row, col, length, o, got, expected)
					}
				}
			}
		}
	}
}

func TestCanPlaceNoTouch(t *testing.T) {
	// ship covers (4,4) (4,5) (4,6)
	board, _ := boardWithShip(t, GridSizeStandard, 4, 4, 3, Horizontal)

	tests := []struct {
		name     string
		row, col int
		length   int
		o        Orientation
		expected bool
	}{
		{"overlap", 4, 5, 2, Vertical, false},
		{"touching diagonally below right", 5, 7, 1, Vertical, false},
		{"touching diagonally above left", 2, 3, 2, Vertical, false},
		{"touching end to end", 4, 7, 2, Horizontal, false},
		{"touching side by side", 5, 4, 3, Horizontal, false},
		{"one row gap", 6, 4, 3, Horizontal, true},
		{"one col gap", 3, 8, 2, Vertical, true},
		{"far away", 0, 0, 5, Horizontal, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, CanPlace(board, test.row, test.col, test.length, test.o, PolicyNoTouch))
		})
	}

	// the same neighbors are fine when only overlap is checked
	require.True(t, CanPlace(board, 5, 7, 1, Vertical, PolicyOverlapOnly))
	require.True(t, CanPlace(board, 4, 7, 2, Horizontal, PolicyOverlapOnly))
}

func TestCanPlaceRejectsInvalidInput(t *testing.T) {
	board := NewBoard(GridSizeStandard)

	require.False(t, CanPlace(board, 0, 0, 0, Horizontal, PolicyNoTouch))
	require.False(t, CanPlace(board, -1, 0, 2, Vertical, PolicyNoTouch))
	require.False(t, CanPlace(board, 0, 8, 3, Horizontal, PolicyOverlapOnly))
	require.False(t, CanPlace(board, 8, 0, 3, Vertical, PolicyOverlapOnly))
	require.True(t, CanPlace(board, 0, 7, 3, Horizontal, PolicyOverlapOnly))
	require.True(t, CanPlace(board, 5, 9, 5, Vertical, PolicyNoTouch))
}

func TestPlaceRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		length   int
		o        Orientation
		expected []Coordinates
	}{
		{"horizontal", 2, 3, 4, Horizontal, []Coordinates{{2, 3}, {2, 4}, {2, 5}, {2, 6}}},
		{"vertical", 5, 9, 3, Vertical, []Coordinates{{5, 9}, {6, 9}, {7, 9}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			original := NewBoard(GridSizeStandard)
			board, positions := Place(original, test.row, test.col, test.length, test.o)

			require.Equal(t, test.expected, positions)
			require.Equal(t, 0, original.Count(CellShip), "input board must not be mutated")

			marked := make([]Coordinates, 0)
			for r, row := range board {
				for c, cell := range row {
					if cell == CellShip {
						marked = append(marked, NewCoordinates(r, c))
					}
				}
			}
			require.ElementsMatch(t, positions, marked)
		})
	}
}

func TestRemoveClearsPositions(t *testing.T) {
	board, positions := boardWithShip(t, GridSizeStandard, 1, 1, 3, Vertical)
	cleared := Remove(board, positions)

	require.Equal(t, 0, cleared.Count(CellShip))
	require.Equal(t, 3, board.Count(CellShip))
}

func TestOrientationToggle(t *testing.T) {
	require.Equal(t, Vertical, Horizontal.Toggle())
	require.Equal(t, Horizontal, Vertical.Toggle())
}
