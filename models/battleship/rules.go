package battleship

const GridSizeStandard = 10

// PlacementPolicy decides whether ships may touch each other.
type PlacementPolicy uint8

const (
	// Ships may not share a cell
	PolicyOverlapOnly PlacementPolicy = iota
	// Ships may not share a cell or touch, diagonals included
	PolicyNoTouch
)

// Rules is the static table a match is played with.
type Rules struct {
	GridSize int
	Fleet    []ShipKind
	Policy   PlacementPolicy

	// When true the computer is told which of its hits
	// belong to sunk ships, as a player would be by the
	// "you sunk my ..." announcement.
	TargetWithFleetKnowledge bool
}

var StandardRules = Rules{
	GridSize:                 GridSizeStandard,
	Fleet:                    StandardFleet,
	Policy:                   PolicyNoTouch,
	TargetWithFleetKnowledge: true,
}
