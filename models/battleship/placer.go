package battleship

import "github.com/charmbracelet/log"

const (
	// random anchors sampled per ship before switching to
	// an exhaustive scan of the remaining legal anchors
	maxRandomPlacementAttempts = 1000
	maxLayoutRestarts          = 100
)

type anchor struct {
	row, col    int
	orientation Orientation
}

// PlaceFleetRandomly seats every ship of the rules' fleet on a fresh board.
// Ships are placed in fleet order. If the fleet cannot be seated at all
// the last attempt is returned and the unseated ships stay unplaced.
func PlaceFleetRandomly(rnd Random, rules Rules) (Board, Fleet) {
	var (
		board Board
		fleet Fleet
		ok    bool
	)

	for restart := 0; restart <= maxLayoutRestarts; restart++ {
		board, fleet, ok = tryPlaceFleet(rnd, rules)
		if ok {
			return board, fleet
		}
	}

	log.Warn("fleet could not be fully placed", "grid_size", rules.GridSize, "ships", len(rules.Fleet))
	return board, fleet
}

func tryPlaceFleet(rnd Random, rules Rules) (Board, Fleet, bool) {
	board := NewBoard(rules.GridSize)
	fleet := NewFleet(rules.Fleet)

	for i := range fleet {
		a, found := sampleAnchor(rnd, board, fleet[i].Length, rules.Policy)
		if !found {
			return board, fleet, false
		}

		newBoard, positions := Place(board, a.row, a.col, fleet[i].Length, a.orientation)
		board = newBoard
		fleet[i].Positions = positions
		fleet[i].Placed = true
	}
	return board, fleet, true
}

func sampleAnchor(rnd Random, board Board, length int, policy PlacementPolicy) (anchor, bool) {
	size := board.Size()

	for attempt := 0; attempt < maxRandomPlacementAttempts; attempt++ {
		a := anchor{
			row:         rnd.Intn(size),
			col:         rnd.Intn(size),
			orientation: Orientation(rnd.Intn(2)),
		}
		if CanPlace(board, a.row, a.col, length, a.orientation, policy) {
			return a, true
		}
	}

	log.Debug("random placement exhausted; scanning free anchors", "length", length)

	candidates := make([]anchor, 0, size*size*2)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			for _, o := range []Orientation{Horizontal, Vertical} {
				if CanPlace(board, row, col, length, o, policy) {
					candidates = append(candidates, anchor{row: row, col: col, orientation: o})
				}
			}
		}
	}

	if len(candidates) == 0 {
		return anchor{}, false
	}
	return candidates[rnd.Intn(len(candidates))], true
}
