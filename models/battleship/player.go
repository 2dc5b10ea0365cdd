package battleship

type Side string

const (
	SideNone   Side = "none"
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideEnemy
	case SideEnemy:
		return SidePlayer
	}
	return SideNone
}

// Player is one side of a match: its own board, the fleet
// seated on it and the statistics of the shots it fired.
type Player struct {
	Board Board
	Fleet Fleet
	Stats ShotStats
}

func NewPlayer(rules Rules) Player {
	return Player{
		Board: NewBoard(rules.GridSize),
		Fleet: NewFleet(rules.Fleet),
	}
}

func NewRandomPlayer(rnd Random, rules Rules) Player {
	board, fleet := PlaceFleetRandomly(rnd, rules)
	return Player{Board: board, Fleet: fleet}
}

func (p Player) clone() Player {
	p.Fleet = p.Fleet.Clone()
	return p
}

func (p Player) IsDefeated() bool {
	return IsFleetSunk(p.Fleet, p.Board)
}

// SunkenShips counts placed ships only, so a fleet that is
// still being placed reports none.
func (p Player) SunkenShips() int {
	sunk := 0
	for _, ship := range p.Fleet {
		if ship.Placed && ship.IsSunk(p.Board) {
			sunk++
		}
	}
	return sunk
}

// receiveAttack resolves a shot against this side's board.
func (p Player) receiveAttack(row, col int) (Player, AttackResult) {
	board, result := Attack(p.Board, row, col)
	p.Board = board
	return p, result
}
