package battleship

import (
	"sync"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

type GameManager interface {
	CreateGame(rules Rules, rnd Random) *Game
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	CountGames() int
}

type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
	}
}

func (bgm *BattleshipGameManager) CreateGame(rules Rules, rnd Random) *Game {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	gameUuid := newGameUuid()
	for _, taken := bgm.games[gameUuid]; taken; _, taken = bgm.games[gameUuid] {
		gameUuid = newGameUuid()
	}

	game := newGame(gameUuid, rules, rnd)
	bgm.games[gameUuid] = game
	return game
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) CountGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
