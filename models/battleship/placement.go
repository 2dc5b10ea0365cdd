package battleship

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (o Orientation) Toggle() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "vertical":
		*o = Vertical
	default:
		*o = Horizontal
	}
	return nil
}

// run lists the cells a ship of the given length occupies
// when anchored at row, col. The run may leave the grid.
func run(row, col, length int, o Orientation) []Coordinates {
	cells := make([]Coordinates, length)
	for i := 0; i < length; i++ {
		if o == Horizontal {
			cells[i] = NewCoordinates(row, col+i)
		} else {
			cells[i] = NewCoordinates(row+i, col)
		}
	}
	return cells
}

// CanPlace reports whether a ship fits at the anchor without leaving
// the grid or overlapping another ship. Under PolicyNoTouch the
// 8-neighborhood of the run must be free of ships as well.
func CanPlace(board Board, row, col, length int, o Orientation, policy PlacementPolicy) bool {
	if length < 1 {
		return false
	}

	cells := run(row, col, length, o)
	for _, c := range cells {
		if !board.InBounds(c.Row, c.Col) {
			return false
		}
		if board[c.Row][c.Col] == CellShip {
			return false
		}
	}

	if policy != PolicyNoTouch {
		return true
	}

	for _, c := range cells {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if board.Cell(c.Row+dr, c.Col+dc) == CellShip {
					return false
				}
			}
		}
	}
	return true
}

// Place writes the ship into a copy of the board and returns the
// copy plus the occupied cells in order. Callers check CanPlace first.
func Place(board Board, row, col, length int, o Orientation) (Board, []Coordinates) {
	newBoard := board.Clone()
	positions := run(row, col, length, o)

	for _, c := range positions {
		newBoard[c.Row][c.Col] = CellShip
	}
	return newBoard, positions
}

// Remove clears the given cells back to empty on a copy of the board.
func Remove(board Board, positions []Coordinates) Board {
	newBoard := board.Clone()
	for _, c := range positions {
		if newBoard.InBounds(c.Row, c.Col) {
			newBoard[c.Row][c.Col] = CellEmpty
		}
	}
	return newBoard
}
