package battleship

type AttackResult uint8

const (
	AttackResultMiss AttackResult = iota
	AttackResultHit
)

func (r AttackResult) String() string {
	if r == AttackResultHit {
		return "hit"
	}
	return "miss"
}

func (r AttackResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *AttackResult) UnmarshalText(text []byte) error {
	if string(text) == "hit" {
		*r = AttackResultHit
	} else {
		*r = AttackResultMiss
	}
	return nil
}

// Attack resolves a shot on a copy of the board: ship becomes hit,
// empty becomes miss. A cell that was already attacked, or a shot
// outside the grid, leaves the board unchanged and reports a miss.
func Attack(board Board, row, col int) (Board, AttackResult) {
	newBoard := board.Clone()
	if !newBoard.InBounds(row, col) {
		return newBoard, AttackResultMiss
	}

	switch newBoard[row][col] {
	case CellShip:
		newBoard[row][col] = CellHit
		return newBoard, AttackResultHit

	case CellEmpty:
		newBoard[row][col] = CellMiss
		return newBoard, AttackResultMiss
	}

	return newBoard, AttackResultMiss
}

// IsFleetSunk is vacuously true for an empty fleet.
func IsFleetSunk(fleet Fleet, board Board) bool {
	for _, ship := range fleet {
		if !ship.IsSunk(board) {
			return false
		}
	}
	return true
}

func CountSunkShips(fleet Fleet, board Board) int {
	sunk := 0
	for _, ship := range fleet {
		if ship.IsSunk(board) {
			sunk++
		}
	}
	return sunk
}
