package error

import "fmt"

const (
	ConstErrAttackFailed    = "attack operation failed"
	ConstErrPlacementFailed = "ship placement failed"
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}

func ErrNoGameForSession(sessionId string) error {
	return fmt.Errorf("session has no game yet; create one first, id: %s", sessionId)
}

func ErrInvalidPhase(action, phase string) error {
	return fmt.Errorf("cannot %s during %s phase", action, phase)
}

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("incoming row or col is out of game grid bound\trow: %d\tcol: %d", row, col)
}

func ErrAttackPositionAlreadyFilled(row, col int) error {
	return fmt.Errorf("current position in grid already attacked\trow: %d\tcol: %d", row, col)
}

func ErrNotTurnForAttacker(side string) error {
	return fmt.Errorf("it is not the turn for attacker: %s", side)
}

func ErrShipIndexOutOfRange(index, fleetSize int) error {
	return fmt.Errorf("ship index out of range\tindex: %d\tfleet size: %d", index, fleetSize)
}

func ErrShipAlreadyPlaced(name string) error {
	return fmt.Errorf("ship is already placed: %s", name)
}

func ErrNoShipSelected() error {
	return fmt.Errorf("no ship is selected for placement")
}

func ErrInvalidPlacement(name string, row, col int, orientation string) error {
	return fmt.Errorf("cannot place %s here\trow: %d\tcol: %d\torientation: %s", name, row, col, orientation)
}

func ErrNothingToUndo() error {
	return fmt.Errorf("no placed ship to undo")
}
