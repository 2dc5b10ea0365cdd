package battleship

type ShipKind struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// Order defines the default placement sequence
var StandardFleet = []ShipKind{
	{Name: "Carrier", Length: 5},
	{Name: "Battleship", Length: 4},
	{Name: "Destroyer", Length: 3},
	{Name: "Submarine", Length: 3},
	{Name: "Patrol Boat", Length: 2},
}

type Ship struct {
	Name      string        `json:"name"`
	Length    int           `json:"length"`
	Placed    bool          `json:"placed"`
	Positions []Coordinates `json:"positions"`
}

func NewShip(kind ShipKind) Ship {
	return Ship{
		Name:      kind.Name,
		Length:    kind.Length,
		Placed:    false,
		Positions: make([]Coordinates, 0, kind.Length),
	}
}

// A ship is sunk iff every recorded position reads hit,
// so a ship with no positions is vacuously sunk.
func (sh Ship) IsSunk(board Board) bool {
	for _, pos := range sh.Positions {
		if board.Cell(pos.Row, pos.Col) != CellHit {
			return false
		}
	}
	return true
}

func (sh Ship) clone() Ship {
	positions := make([]Coordinates, len(sh.Positions))
	copy(positions, sh.Positions)
	sh.Positions = positions
	return sh
}

type Fleet []Ship

// Returns a fresh fleet with every ship unplaced
func NewFleet(kinds []ShipKind) Fleet {
	fleet := make(Fleet, len(kinds))
	for i, kind := range kinds {
		fleet[i] = NewShip(kind)
	}
	return fleet
}

func (f Fleet) Clone() Fleet {
	if f == nil {
		return nil
	}
	clone := make(Fleet, len(f))
	for i, ship := range f {
		clone[i] = ship.clone()
	}
	return clone
}

// FirstUnplaced returns the index of the first unplaced
// ship, or -1 when the whole fleet is seated.
func (f Fleet) FirstUnplaced() int {
	for i, ship := range f {
		if !ship.Placed {
			return i
		}
	}
	return -1
}

func (f Fleet) AllPlaced() bool {
	return f.FirstUnplaced() == -1
}
