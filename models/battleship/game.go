package battleship

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Game holds the current snapshot of one match. Transitions
// are applied under the lock so observers only ever see whole turns.
type Game struct {
	uuid      string
	createdAt time.Time
	match     Match
	mu        sync.Mutex
}

func newGame(gameUuid string, rules Rules, rnd Random) *Game {
	return &Game{
		uuid:      gameUuid,
		createdAt: time.Now(),
		match:     NewMatch(rules, rnd),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Game) Match() Match {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.match
}

// Apply runs a transition against the current snapshot and publishes
// the result. A failed transition leaves the snapshot as it was.
func (g *Game) Apply(transition func(Match) (Match, error)) (Match, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	next, err := transition(g.match)
	if err != nil {
		return g.match, err
	}
	g.match = next
	return next, nil
}

// Attack is Apply for transitions that also report a shot.
func (g *Game) Attack(transition func(Match) (Match, Shot, error)) (Match, Shot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	next, shot, err := transition(g.match)
	if err != nil {
		return g.match, Shot{}, err
	}
	g.match = next
	return next, shot, nil
}

func (g *Game) Restart() Match {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.match = g.match.Restart()
	return g.match
}

func newGameUuid() string {
	return uuid.NewString()[:6]
}
