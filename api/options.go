package api

import (
	"fmt"
	"time"

	"github.com/saeidalz13/battleship-ai/db/sqlc"
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	DefaultMoveDelay = time.Millisecond * 800
)

type Option func(*RequestProcessor) error

func WithStage(stage string) Option {
	return func(rp *RequestProcessor) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		rp.stage = stage
		return nil
	}
}

// WithQuerier enables the analytics counters. Without it
// the processor runs without a database.
func WithQuerier(q sqlc.Querier) Option {
	return func(rp *RequestProcessor) error {
		if q == nil {
			return fmt.Errorf("querier cannot be nil")
		}
		dbManager := sqlc.NewDbManager(q)
		rp.dbManager = &dbManager
		return nil
	}
}

// WithMoveDelay is the pause before the computer answers a shot.
func WithMoveDelay(delay time.Duration) Option {
	return func(rp *RequestProcessor) error {
		if delay < 0 {
			return fmt.Errorf("move delay cannot be negative: %s", delay)
		}
		rp.moveDelay = delay
		return nil
	}
}

// WithRandSource sets how each new game gets its random source.
// Sources are never shared between games.
func WithRandSource(newRand func() mb.Random) Option {
	return func(rp *RequestProcessor) error {
		if newRand == nil {
			return fmt.Errorf("random source constructor cannot be nil")
		}
		rp.newRand = newRand
		return nil
	}
}

func WithRules(rules mb.Rules) Option {
	return func(rp *RequestProcessor) error {
		if rules.GridSize <= 0 || len(rules.Fleet) == 0 {
			return fmt.Errorf("rules need a positive grid size and at least one ship")
		}
		rp.rules = rules
		return nil
	}
}
