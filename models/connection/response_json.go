package connection

import (
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespShip struct {
	Name      string           `json:"name"`
	Length    int              `json:"length"`
	Placed    bool             `json:"placed"`
	Sunk      bool             `json:"sunk"`
	Positions []mb.Coordinates `json:"positions,omitempty"`
}

type RespSideStats struct {
	mb.ShotStats
	Accuracy  int `json:"accuracy"`
	ShipsSunk int `json:"ships_sunk"`
}

// RespMatchState is what the client renders. Ship positions of
// the computer are only revealed once the ship is sunk or the
// match is over.
type RespMatchState struct {
	GameUuid     string         `json:"game_uuid"`
	Phase        mb.Phase       `json:"phase"`
	Turn         mb.Side        `json:"turn"`
	Winner       mb.Side        `json:"winner"`
	SelectedShip int            `json:"selected_ship"`
	Orientation  mb.Orientation `json:"orientation"`
	PlayerBoard  mb.Board       `json:"player_board"`
	EnemyBoard   mb.Board       `json:"enemy_board"`
	PlayerFleet  []RespShip     `json:"player_fleet"`
	EnemyFleet   []RespShip     `json:"enemy_fleet"`
	PlayerStats  RespSideStats  `json:"player_stats"`
	EnemyStats   RespSideStats  `json:"enemy_stats"`
}

func NewRespMatchState(gameUuid string, m mb.Match) RespMatchState {
	playerBoard, enemyBoard := m.PlayerBoard(), m.EnemyBoard()
	revealEnemy := m.IsOver()

	visibleEnemyBoard := enemyBoard
	if !revealEnemy {
		visibleEnemyBoard = enemyBoard.Masked()
	}

	return RespMatchState{
		GameUuid:     gameUuid,
		Phase:        m.Phase(),
		Turn:         m.Turn(),
		Winner:       m.Winner(),
		SelectedShip: m.SelectedShip(),
		Orientation:  m.Orientation(),
		PlayerBoard:  playerBoard,
		EnemyBoard:   visibleEnemyBoard,
		PlayerFleet:  newRespFleet(m.PlayerFleet(), playerBoard, true),
		EnemyFleet:   newRespFleet(m.EnemyFleet(), enemyBoard, revealEnemy),
		PlayerStats: RespSideStats{
			ShotStats: m.PlayerStats(),
			Accuracy:  m.PlayerStats().Accuracy(),
			ShipsSunk: m.EnemySunkenShips(),
		},
		EnemyStats: RespSideStats{
			ShotStats: m.EnemyStats(),
			Accuracy:  m.EnemyStats().Accuracy(),
			ShipsSunk: m.PlayerSunkenShips(),
		},
	}
}

func newRespFleet(fleet mb.Fleet, board mb.Board, reveal bool) []RespShip {
	ships := make([]RespShip, len(fleet))
	for i, ship := range fleet {
		sunk := ship.Placed && ship.IsSunk(board)
		ships[i] = RespShip{
			Name:   ship.Name,
			Length: ship.Length,
			Placed: ship.Placed,
			Sunk:   sunk,
		}
		if reveal || sunk {
			ships[i].Positions = ship.Positions
		}
	}
	return ships
}

type RespAttack struct {
	Shot  mb.Shot        `json:"shot"`
	State RespMatchState `json:"state"`
}

type RespEndGame struct {
	Winner      mb.Side       `json:"winner"`
	PlayerStats RespSideStats `json:"player_stats"`
	EnemyStats  RespSideStats `json:"enemy_stats"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
