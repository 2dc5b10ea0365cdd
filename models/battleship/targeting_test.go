package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boardWithCells(size int, state CellState, cells ...Coordinates) Board {
	board := NewBoard(size)
	for _, c := range cells {
		board[c.Row][c.Col] = state
	}
	return board
}

func TestHuntPrefersEvenParity(t *testing.T) {
	board := NewBoard(GridSizeStandard)
	rnd := NewRandom(1)

	for i := 0; i < 200; i++ {
		target := ChooseTarget(board, nil, rnd)
		require.True(t, target.IsEven(), "target %+v is odd", target)
		require.True(t, board.InBounds(target.Row, target.Col))
	}
}

func TestHuntParityWhileShooting(t *testing.T) {
	board := NewBoard(GridSizeStandard)
	rnd := NewRandom(2)

	// 50 even cells: every shot lands on water and stays even until
	// they are gone, then the odd pool opens up
	for i := 0; i < 100; i++ {
		target := ChooseTarget(board, nil, rnd)
		require.False(t, board[target.Row][target.Col].IsAttacked())
		if i < 50 {
			require.True(t, target.IsEven(), "shot %d at %+v is odd", i, target)
		} else {
			require.False(t, target.IsEven(), "shot %d at %+v is even", i, target)
		}
		board, _ = Attack(board, target.Row, target.Col)
	}
}

func TestTargetFollowsHorizontalLine(t *testing.T) {
	board := boardWithCells(GridSizeStandard, CellHit, NewCoordinates(3, 4), NewCoordinates(3, 5))

	for seed := int64(1); seed <= 50; seed++ {
		target := ChooseTarget(board, nil, NewRandom(seed))
		if target != NewCoordinates(3, 3) && target != NewCoordinates(3, 6) {
			t.Fatalf("expected (3,3) or (3,6)\tgot: %+v", target)
		}
	}

	board[3][3] = CellMiss
	for seed := int64(1); seed <= 20; seed++ {
		require.Equal(t, NewCoordinates(3, 6), ChooseTarget(board, nil, NewRandom(seed)))
	}
}

func TestTargetFollowsVerticalLine(t *testing.T) {
	board := boardWithCells(GridSizeStandard, CellHit, NewCoordinates(0, 7), NewCoordinates(1, 7), NewCoordinates(2, 7))

	for seed := int64(1); seed <= 20; seed++ {
		require.Equal(t, NewCoordinates(3, 7), ChooseTarget(board, nil, NewRandom(seed)))
	}
}

func TestTargetProbesNeighborsOfIsolatedHit(t *testing.T) {
	board := boardWithCells(GridSizeStandard, CellHit, NewCoordinates(0, 0))
	allowed := map[Coordinates]bool{{0, 1}: true, {1, 0}: true}

	for seed := int64(1); seed <= 30; seed++ {
		target := ChooseTarget(board, nil, NewRandom(seed))
		require.True(t, allowed[target], "unexpected target %+v", target)
	}

	board[0][1] = CellMiss
	require.Equal(t, NewCoordinates(1, 0), ChooseTarget(board, nil, NewRandom(1)))
}

func TestTargetFallsBackToHuntWhenNeighborsResolved(t *testing.T) {
	board := boardWithCells(GridSizeStandard, CellMiss,
		NewCoordinates(4, 5), NewCoordinates(6, 5), NewCoordinates(5, 4), NewCoordinates(5, 6))
	board[5][5] = CellHit

	for seed := int64(1); seed <= 30; seed++ {
		target := ChooseTarget(board, nil, NewRandom(seed))
		require.False(t, board[target.Row][target.Col].IsAttacked())
		require.True(t, target.IsEven())
	}
}

func TestTargetWithFleetKnowledge(t *testing.T) {
	board, positions := Place(NewBoard(GridSizeStandard), 0, 0, 2, Horizontal)
	board, _ = Attack(board, 0, 0)
	board, _ = Attack(board, 0, 1)
	fleet := Fleet{{Name: "Patrol Boat", Length: 2, Placed: true, Positions: positions}}

	// without knowing the ship sank, the run is extended
	require.Equal(t, NewCoordinates(0, 2), ChooseTarget(board, nil, NewRandom(1)))

	// knowing it sank, the computer hunts away from its ring
	for seed := int64(1); seed <= 50; seed++ {
		target := ChooseTarget(board, fleet, NewRandom(seed))
		inRing := target.Row <= 1 && target.Col <= 2
		require.False(t, inRing, "target %+v is inside the avoid zone", target)
		require.True(t, target.IsEven())
	}
}

func TestHuntSearchesAvoidZoneWhenNothingElseIsLeft(t *testing.T) {
	board, positions := Place(NewBoard(3), 1, 1, 1, Horizontal)
	board, _ = Attack(board, 1, 1)
	fleet := Fleet{{Name: "Dinghy", Length: 1, Placed: true, Positions: positions}}

	target := ChooseTarget(board, fleet, NewRandom(1))
	require.False(t, board[target.Row][target.Col].IsAttacked())
	require.True(t, target.IsEven())
}

func TestChooseTargetFullyAttackedBoard(t *testing.T) {
	board := NewBoard(4)
	for r := range board {
		for c := range board[r] {
			board[r][c] = CellMiss
		}
	}

	require.Equal(t, NewCoordinates(0, 0), ChooseTarget(board, nil, NewRandom(1)))
}

func TestContiguousRuns(t *testing.T) {
	tests := []struct {
		name     string
		sorted   []int
		expected [][2]int
	}{
		{"empty", nil, [][2]int{}},
		{"single", []int{4}, [][2]int{}},
		{"gaps only", []int{1, 3, 5}, [][2]int{}},
		{"mixed", []int{1, 2, 3, 5, 7, 8}, [][2]int{{1, 3}, {7, 8}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, contiguousRuns(test.sorted))
		})
	}
}

func TestComputerSinksFleet(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rnd := NewRandom(seed)
		board, fleet := PlaceFleetRandomly(rnd, StandardRules)
		size := board.Size()

		shots := 0
		for !IsFleetSunk(fleet, board) {
			require.Less(t, shots, size*size, "seed %d: board exhausted without sinking", seed)

			target := ChooseTarget(board, fleet, rnd)
			require.False(t, board[target.Row][target.Col].IsAttacked(), "seed %d: repeated %+v", seed, target)

			board, _ = Attack(board, target.Row, target.Col)
			shots++
		}
	}
}
