package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttack(t *testing.T) {
	board, _ := Place(NewBoard(GridSizeStandard), 0, 0, 3, Horizontal)

	tests := []struct {
		name           string
		row, col       int
		expectedResult AttackResult
		expectedCell   CellState
	}{
		{"hit ship", 0, 1, AttackResultHit, CellHit},
		{"miss water", 5, 5, AttackResultMiss, CellMiss},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := board.Clone()
			newBoard, result := Attack(board, test.row, test.col)

			require.Equal(t, test.expectedResult, result)
			require.Equal(t, test.expectedCell, newBoard[test.row][test.col])
			require.Equal(t, before, board, "input board must not be mutated")
		})
	}
}

func TestAttackRepeatNeverToggles(t *testing.T) {
	board, _ := Place(NewBoard(GridSizeStandard), 0, 0, 3, Horizontal)

	hitOnce, result := Attack(board, 0, 0)
	require.Equal(t, AttackResultHit, result)

	hitTwice, result := Attack(hitOnce, 0, 0)
	require.Equal(t, AttackResultMiss, result)
	require.Equal(t, hitOnce, hitTwice)
	require.Equal(t, CellHit, hitTwice[0][0])

	missOnce, _ := Attack(board, 9, 9)
	missTwice, result := Attack(missOnce, 9, 9)
	require.Equal(t, AttackResultMiss, result)
	require.Equal(t, missOnce, missTwice)
	require.Equal(t, CellMiss, missTwice[9][9])
}

func TestAttackOutOfBounds(t *testing.T) {
	board := NewBoard(GridSizeStandard)
	newBoard, result := Attack(board, 10, -1)

	require.Equal(t, AttackResultMiss, result)
	require.Equal(t, board, newBoard)
}

func TestFleetSunkScenario(t *testing.T) {
	board, positions := Place(NewBoard(GridSizeStandard), 0, 0, 3, Horizontal)
	fleet := Fleet{{Name: "Destroyer", Length: 3, Placed: true, Positions: positions}}
	require.Equal(t, []Coordinates{{0, 0}, {0, 1}, {0, 2}}, positions)

	board, _ = Attack(board, 0, 0)
	board, _ = Attack(board, 0, 1)
	require.False(t, IsFleetSunk(fleet, board))
	require.Equal(t, 0, CountSunkShips(fleet, board))

	board, _ = Attack(board, 0, 2)
	require.True(t, IsFleetSunk(fleet, board))
	require.Equal(t, 1, CountSunkShips(fleet, board))
}

func TestFleetSunkIsMonotonic(t *testing.T) {
	board, fleet := PlaceFleetRandomly(NewRandom(3), StandardRules)
	for _, ship := range fleet {
		for _, pos := range ship.Positions {
			board, _ = Attack(board, pos.Row, pos.Col)
		}
	}
	require.True(t, IsFleetSunk(fleet, board))

	// firing again at cells that are already resolved
	for _, pos := range fleet[0].Positions {
		board, _ = Attack(board, pos.Row, pos.Col)
		require.True(t, IsFleetSunk(fleet, board))
	}
	for _, pos := range []Coordinates{{0, 0}, {9, 9}, {4, 5}} {
		board, _ = Attack(board, pos.Row, pos.Col)
		board, _ = Attack(board, pos.Row, pos.Col)
		require.True(t, IsFleetSunk(fleet, board))
	}
	require.Equal(t, len(fleet), CountSunkShips(fleet, board))
}

func TestCountSunkShipsPartial(t *testing.T) {
	board, fleet := PlaceFleetRandomly(NewRandom(11), StandardRules)
	last := fleet[len(fleet)-1]
	for _, pos := range last.Positions {
		board, _ = Attack(board, pos.Row, pos.Col)
	}
	board, _ = Attack(board, fleet[0].Positions[0].Row, fleet[0].Positions[0].Col)

	require.Equal(t, 1, CountSunkShips(fleet, board))
	require.False(t, IsFleetSunk(fleet, board))
	require.True(t, last.IsSunk(board))
	require.False(t, fleet[0].IsSunk(board))
}

func TestIsFleetSunkEdgeCases(t *testing.T) {
	board := NewBoard(GridSizeStandard)

	require.True(t, IsFleetSunk(Fleet{}, board))
	require.True(t, NewShip(StandardFleet[0]).IsSunk(board), "a ship without positions is vacuously sunk")
}

func TestUnplacedFleet(t *testing.T) {
	board := NewBoard(GridSizeStandard)
	fleet := NewFleet(StandardFleet)

	require.True(t, IsFleetSunk(fleet, board))
	require.Equal(t, len(fleet), CountSunkShips(fleet, board))

	player := NewPlayer(StandardRules)
	require.Equal(t, 0, player.SunkenShips())
}

func TestPartialLayoutCanStillBeDefeated(t *testing.T) {
	board, positions := Place(NewBoard(GridSizeStandard), 0, 0, 2, Horizontal)
	fleet := NewFleet([]ShipKind{{Name: "Patrol Boat", Length: 2}, {Name: "Carrier", Length: 5}})
	fleet[0].Positions = positions
	fleet[0].Placed = true

	player := Player{Board: board, Fleet: fleet}
	require.False(t, player.IsDefeated())

	player, _ = player.receiveAttack(0, 0)
	player, _ = player.receiveAttack(0, 1)
	require.True(t, player.IsDefeated(), "the carrier that never fit on the board must not keep the side alive")
	require.Equal(t, 1, player.SunkenShips())
}
