package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeNewGame
	CodeSelectShip
	CodeToggleOrientation
	CodePlaceShip
	CodeRandomPlacement
	CodeUndoPlacement
	CodeStartBattle
	CodeAttack

	// Pushed by the server after the player's attack
	// once the computer has fired back
	CodeEnemyAttack
	CodeEndGame

	// Discards the current match and starts a new one
	CodeRestart
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
