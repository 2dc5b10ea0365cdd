package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
	mc "github.com/saeidalz13/battleship-ai/models/connection"
)

// Every incoming valid request has this structure. The
// payload is decoded by the handler of its code.
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

type transition = func(mb.Match) (mb.Match, error)

func newStateMessage(code uint8, game *mb.Game, m mb.Match, err error) mc.Message[mc.RespMatchState] {
	resp := mc.NewMessage[mc.RespMatchState](code)
	if err != nil {
		message := ""
		if code == mc.CodePlaceShip {
			message = cerr.ConstErrPlacementFailed
		}
		resp.AddError(err.Error(), message)
		return resp
	}
	resp.AddPayload(mc.NewRespMatchState(game.Uuid(), m))
	return resp
}

func (r Request) applyToGame(code uint8, game *mb.Game, sessionId string, tr transition) mc.Message[mc.RespMatchState] {
	if game == nil {
		return newStateMessage(code, nil, mb.Match{}, cerr.ErrNoGameForSession(sessionId))
	}
	m, err := game.Apply(tr)
	return newStateMessage(code, game, m, err)
}

func (r Request) HandleNewGame(gm mb.GameManager, rules mb.Rules, rnd mb.Random) (*mb.Game, mc.Message[mc.RespMatchState]) {
	game := gm.CreateGame(rules, rnd)
	return game, newStateMessage(mc.CodeNewGame, game, game.Match(), nil)
}

func (r Request) HandleSelectShip(game *mb.Game, sessionId string) mc.Message[mc.RespMatchState] {
	var req mc.Message[mc.ReqSelectShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		return newStateMessage(mc.CodeSelectShip, game, mb.Match{}, err)
	}

	return r.applyToGame(mc.CodeSelectShip, game, sessionId, func(m mb.Match) (mb.Match, error) {
		return m.SelectShip(req.Payload.ShipIndex)
	})
}

func (r Request) HandleToggleOrientation(game *mb.Game, sessionId string) mc.Message[mc.RespMatchState] {
	return r.applyToGame(mc.CodeToggleOrientation, game, sessionId, mb.Match.ToggleOrientation)
}

func (r Request) HandlePlaceShip(game *mb.Game, sessionId string) mc.Message[mc.RespMatchState] {
	var req mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		return newStateMessage(mc.CodePlaceShip, game, mb.Match{}, err)
	}

	return r.applyToGame(mc.CodePlaceShip, game, sessionId, func(m mb.Match) (mb.Match, error) {
		return m.PlaceSelectedShip(req.Payload.Row, req.Payload.Col)
	})
}

func (r Request) HandleRandomPlacement(game *mb.Game, sessionId string) mc.Message[mc.RespMatchState] {
	return r.applyToGame(mc.CodeRandomPlacement, game, sessionId, mb.Match.RandomizePlayerFleet)
}

func (r Request) HandleUndoPlacement(game *mb.Game, sessionId string) mc.Message[mc.RespMatchState] {
	return r.applyToGame(mc.CodeUndoPlacement, game, sessionId, mb.Match.UndoPlacement)
}

func (r Request) HandleStartBattle(game *mb.Game, sessionId string) mc.Message[mc.RespMatchState] {
	return r.applyToGame(mc.CodeStartBattle, game, sessionId, mb.Match.StartBattle)
}

func newAttackMessage(code uint8, game *mb.Game, m mb.Match, shot mb.Shot, err error) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](code)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}
	resp.AddPayload(mc.RespAttack{Shot: shot, State: mc.NewRespMatchState(game.Uuid(), m)})
	return resp
}

// HandleAttack fires the player's shot. The returned match is
// only meaningful when the message carries no error.
func (r Request) HandleAttack(game *mb.Game, sessionId string) (mb.Match, mc.Message[mc.RespAttack]) {
	if game == nil {
		return mb.Match{}, newAttackMessage(mc.CodeAttack, nil, mb.Match{}, mb.Shot{}, cerr.ErrNoGameForSession(sessionId))
	}

	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		return mb.Match{}, newAttackMessage(mc.CodeAttack, game, mb.Match{}, mb.Shot{}, err)
	}

	m, shot, err := game.Attack(func(m mb.Match) (mb.Match, mb.Shot, error) {
		return m.PlayerAttack(req.Payload.Row, req.Payload.Col)
	})
	return m, newAttackMessage(mc.CodeAttack, game, m, shot, err)
}

func (r Request) HandleEnemyAttack(game *mb.Game) (mb.Match, mc.Message[mc.RespAttack]) {
	m, shot, err := game.Attack(mb.Match.EnemyAttack)
	return m, newAttackMessage(mc.CodeEnemyAttack, game, m, shot, err)
}

func (r Request) HandleRestart(game *mb.Game, sessionId string) mc.Message[mc.RespMatchState] {
	if game == nil {
		return newStateMessage(mc.CodeRestart, nil, mb.Match{}, cerr.ErrNoGameForSession(sessionId))
	}
	return newStateMessage(mc.CodeRestart, game, game.Restart(), nil)
}

func NewEndGameMessage(m mb.Match) mc.Message[mc.RespEndGame] {
	state := mc.NewRespMatchState("", m)

	resp := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	resp.AddPayload(mc.RespEndGame{
		Winner:      m.Winner(),
		PlayerStats: state.PlayerStats,
		EnemyStats:  state.EnemyStats,
	})
	return resp
}
