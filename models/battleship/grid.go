package battleship

import "fmt"

type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

var cellStateNames = [...]string{
	CellEmpty: "empty",
	CellShip:  "ship",
	CellHit:   "hit",
	CellMiss:  "miss",
}

func (c CellState) String() string {
	if int(c) < len(cellStateNames) {
		return cellStateNames[c]
	}
	return fmt.Sprintf("CellState(%d)", c)
}

// A cell is attacked once it reached one of the
// terminal states: hit or miss
func (c CellState) IsAttacked() bool {
	return c == CellHit || c == CellMiss
}

func (c CellState) MarshalText() ([]byte, error) {
	if int(c) >= len(cellStateNames) {
		return nil, fmt.Errorf("invalid cell state: %d", c)
	}
	return []byte(cellStateNames[c]), nil
}

func (c *CellState) UnmarshalText(text []byte) error {
	for state, name := range cellStateNames {
		if name == string(text) {
			*c = CellState(state)
			return nil
		}
	}
	return fmt.Errorf("invalid cell state: %q", text)
}

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Checkerboard parity of the cell. Every ship of
// length 2 or more covers at least one even cell.
func (c Coordinates) IsEven() bool {
	return (c.Row+c.Col)%2 == 0
}

// Board is a square matrix indexed as board[row][col].
type Board [][]CellState

// Creates a new default board
// All cells are CellEmpty
func NewBoard(size int) Board {
	board := make(Board, size)

	for i := 0; i < size; i++ {
		board[i] = make([]CellState, size)
	}
	return board
}

func (b Board) Size() int {
	return len(b)
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(b) && col < len(b)
}

// Cell returns the state at row, col. Cells outside
// the grid read as empty.
func (b Board) Cell(row, col int) CellState {
	if !b.InBounds(row, col) {
		return CellEmpty
	}
	return b[row][col]
}

func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for i, row := range b {
		clone[i] = make([]CellState, len(row))
		copy(clone[i], row)
	}
	return clone
}

// Count returns the number of cells in the given state.
func (b Board) Count(state CellState) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == state {
				n++
			}
		}
	}
	return n
}

// Masked returns a copy of the board with every unattacked
// ship cell reported as empty. This is what the opponent sees.
func (b Board) Masked() Board {
	masked := b.Clone()
	for _, row := range masked {
		for col, cell := range row {
			if cell == CellShip {
				row[col] = CellEmpty
			}
		}
	}
	return masked
}
