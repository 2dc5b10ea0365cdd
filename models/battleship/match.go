package battleship

import (
	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

type Phase string

const (
	PhasePlacement Phase = "placement"
	PhaseReady     Phase = "ready"
	PhaseBattle    Phase = "battle"
	PhaseGameOver  Phase = "gameover"
)

const noShipSelected = -1

// Shot is one resolved attack.
type Shot struct {
	By     Side         `json:"by"`
	Target Coordinates  `json:"target"`
	Result AttackResult `json:"result"`
	// Name of the ship this shot finished off, if any
	SunkShip string `json:"sunk_ship,omitempty"`
}

// Match is an immutable snapshot of a human vs computer game.
// Every transition returns a new snapshot and leaves the receiver
// untouched; a rejected transition returns the receiver as is.
type Match struct {
	phase        Phase
	turn         Side
	winner       Side
	player       Player
	enemy        Player
	selectedShip int
	orientation  Orientation

	// indices into player.Fleet in the order they were placed
	placementOrder []int

	rules Rules
	rnd   Random
}

// NewMatch seats the computer's fleet at random and leaves
// the player's board empty for the placement phase.
func NewMatch(rules Rules, rnd Random) Match {
	return Match{
		phase:          PhasePlacement,
		turn:           SidePlayer,
		winner:         SideNone,
		player:         NewPlayer(rules),
		enemy:          NewRandomPlayer(rnd, rules),
		selectedShip:   0,
		orientation:    Horizontal,
		placementOrder: make([]int, 0, len(rules.Fleet)),
		rules:          rules,
		rnd:            rnd,
	}
}

func (m Match) Phase() Phase { return m.phase }
func (m Match) Turn() Side { return m.turn }
func (m Match) Winner() Side { return m.winner }
func (m Match) Orientation() Orientation { return m.orientation }
func (m Match) Rules() Rules { return m.rules }
func (m Match) PlayerBoard() Board { return m.player.Board.Clone() }
func (m Match) EnemyBoard() Board { return m.enemy.Board.Clone() }
func (m Match) PlayerFleet() Fleet { return m.player.Fleet.Clone() }
func (m Match) EnemyFleet() Fleet { return m.enemy.Fleet.Clone() }
func (m Match) PlayerStats() ShotStats { return m.player.Stats }
func (m Match) EnemyStats() ShotStats { return m.enemy.Stats }
func (m Match) PlayerSunkenShips() int { return m.player.SunkenShips() }
func (m Match) EnemySunkenShips() int { return m.enemy.SunkenShips() }
func (m Match) IsOver() bool { return m.phase == PhaseGameOver }

// SelectedShip returns the index of the ship the next placement
// click seats, or -1 when none is selected.
func (m Match) SelectedShip() int {
	return m.selectedShip
}

// copy-on-write: the returned match shares no mutable state with m
func (m Match) clone() Match {
	m.player = m.player.clone()
	m.enemy = m.enemy.clone()
	order := make([]int, len(m.placementOrder), len(m.rules.Fleet))
	copy(order, m.placementOrder)
	m.placementOrder = order
	return m
}

func (m Match) SelectShip(index int) (Match, error) {
	if m.phase != PhasePlacement {
		return m, cerr.ErrInvalidPhase("select a ship", string(m.phase))
	}
	if index < 0 || index >= len(m.player.Fleet) {
		return m, cerr.ErrShipIndexOutOfRange(index, len(m.player.Fleet))
	}
	if m.player.Fleet[index].Placed {
		return m, cerr.ErrShipAlreadyPlaced(m.player.Fleet[index].Name)
	}

	m.selectedShip = index
	return m, nil
}

func (m Match) ToggleOrientation() (Match, error) {
	if m.phase != PhasePlacement {
		return m, cerr.ErrInvalidPhase("rotate a ship", string(m.phase))
	}

	m.orientation = m.orientation.Toggle()
	return m, nil
}

// PlaceSelectedShip seats the selected ship with its anchor at row, col.
// The selection moves to the first unplaced ship; once the whole fleet
// is seated the match is ready to start.
func (m Match) PlaceSelectedShip(row, col int) (Match, error) {
	if m.phase != PhasePlacement {
		return m, cerr.ErrInvalidPhase("place a ship", string(m.phase))
	}
	if m.selectedShip == noShipSelected {
		return m, cerr.ErrNoShipSelected()
	}

	ship := m.player.Fleet[m.selectedShip]
	if !CanPlace(m.player.Board, row, col, ship.Length, m.orientation, m.rules.Policy) {
		return m, cerr.ErrInvalidPlacement(ship.Name, row, col, m.orientation.String())
	}

	next := m.clone()
	board, positions := Place(next.player.Board, row, col, ship.Length, next.orientation)
	next.player.Board = board
	next.player.Fleet[next.selectedShip].Positions = positions
	next.player.Fleet[next.selectedShip].Placed = true
	next.placementOrder = append(next.placementOrder, next.selectedShip)

	next.selectedShip = next.player.Fleet.FirstUnplaced()
	if next.selectedShip == noShipSelected {
		next.phase = PhaseReady
	}
	return next, nil
}

// RandomizePlayerFleet replaces whatever the player placed so far
// with a random layout of the whole fleet.
func (m Match) RandomizePlayerFleet() (Match, error) {
	if m.phase != PhasePlacement && m.phase != PhaseReady {
		return m, cerr.ErrInvalidPhase("place ships randomly", string(m.phase))
	}

	next := m.clone()
	next.player = NewRandomPlayer(next.rnd, next.rules)
	next.placementOrder = next.placementOrder[:0]
	for i, ship := range next.player.Fleet {
		if ship.Placed {
			next.placementOrder = append(next.placementOrder, i)
		}
	}
	next.selectedShip = next.player.Fleet.FirstUnplaced()
	if next.selectedShip == noShipSelected {
		next.phase = PhaseReady
	}
	return next, nil
}

// UndoPlacement lifts the most recently placed ship off the board
// and selects it again.
func (m Match) UndoPlacement() (Match, error) {
	if m.phase != PhasePlacement && m.phase != PhaseReady {
		return m, cerr.ErrInvalidPhase("undo a placement", string(m.phase))
	}
	if len(m.placementOrder) == 0 {
		return m, cerr.ErrNothingToUndo()
	}

	next := m.clone()
	last := next.placementOrder[len(next.placementOrder)-1]
	next.placementOrder = next.placementOrder[:len(next.placementOrder)-1]

	ship := &next.player.Fleet[last]
	next.player.Board = Remove(next.player.Board, ship.Positions)
	ship.Positions = ship.Positions[:0]
	ship.Placed = false

	next.selectedShip = last
	next.phase = PhasePlacement
	return next, nil
}

func (m Match) StartBattle() (Match, error) {
	if m.phase != PhaseReady {
		return m, cerr.ErrInvalidPhase("start the battle", string(m.phase))
	}

	m.phase = PhaseBattle
	m.turn = SidePlayer
	return m, nil
}

// PlayerAttack fires the player's shot at the computer's board.
// Sinking the last enemy ship ends the match; otherwise the
// turn passes to the computer.
func (m Match) PlayerAttack(row, col int) (Match, Shot, error) {
	if err := m.checkTurn(SidePlayer); err != nil {
		return m, Shot{}, err
	}
	if !m.enemy.Board.InBounds(row, col) {
		return m, Shot{}, cerr.ErrXorYOutOfGridBound(row, col)
	}
	if m.enemy.Board[row][col].IsAttacked() {
		return m, Shot{}, cerr.ErrAttackPositionAlreadyFilled(row, col)
	}
	return m.resolveAttack(SidePlayer, NewCoordinates(row, col))
}

// EnemyAttack lets the computer pick and fire its shot
// at the player's board.
func (m Match) EnemyAttack() (Match, Shot, error) {
	if err := m.checkTurn(SideEnemy); err != nil {
		return m, Shot{}, err
	}

	var knownFleet Fleet
	if m.rules.TargetWithFleetKnowledge {
		knownFleet = m.player.Fleet
	}
	target := ChooseTarget(m.player.Board, knownFleet, m.rnd)

	if m.player.Board.Cell(target.Row, target.Col).IsAttacked() {
		return m, Shot{}, cerr.ErrAttackPositionAlreadyFilled(target.Row, target.Col)
	}
	return m.resolveAttack(SideEnemy, target)
}

func (m Match) checkTurn(attacker Side) error {
	if m.phase != PhaseBattle {
		return cerr.ErrInvalidPhase("attack", string(m.phase))
	}
	if m.turn != attacker {
		return cerr.ErrNotTurnForAttacker(string(attacker))
	}
	return nil
}

// resolveAttack applies the shot, the sunk check and the turn or
// winner update to one new snapshot.
func (m Match) resolveAttack(attacker Side, target Coordinates) (Match, Shot, error) {
	next := m.clone()

	attacking, defending := &next.player, &next.enemy
	if attacker == SideEnemy {
		attacking, defending = &next.enemy, &next.player
	}

	sunkBefore := make([]bool, len(defending.Fleet))
	for i, ship := range defending.Fleet {
		sunkBefore[i] = ship.IsSunk(defending.Board)
	}

	var result AttackResult
	*defending, result = defending.receiveAttack(target.Row, target.Col)
	attacking.Stats = attacking.Stats.record(result)

	shot := Shot{By: attacker, Target: target, Result: result}
	for i, ship := range defending.Fleet {
		if !sunkBefore[i] && ship.IsSunk(defending.Board) {
			shot.SunkShip = ship.Name
		}
	}

	if defending.IsDefeated() {
		next.phase = PhaseGameOver
		next.winner = attacker
		return next, shot, nil
	}

	next.turn = attacker.Opponent()
	return next, shot, nil
}

// Restart discards the match and returns a fresh one
// played with the same rules.
func (m Match) Restart() Match {
	return NewMatch(m.rules, m.rnd)
}
