package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"

	mb "github.com/saeidalz13/battleship-ai/models/battleship"
)

// AnalyticsManager keeps per-server counters. Every call
// is bounded by QuerierCtxTimeout on top of the parent ctx.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.IncrementGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementRestartsCalledCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.IncrementRestartsCalledCount(ctx, serverIpNet)
}

// IncrementWinsCount bumps the counter of the side that won.
// A match without a winner is not recorded.
func (a *AnalyticsManager) IncrementWinsCount(ctx context.Context, serverIpNet pqtype.Inet, winner mb.Side) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	switch winner {
	case mb.SidePlayer:
		return a.queries.IncrementPlayerWinsCount(ctx, serverIpNet)
	case mb.SideEnemy:
		return a.queries.IncrementEnemyWinsCount(ctx, serverIpNet)
	default:
		return nil
	}
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.GetGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetRestartsCalledCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.GetRestartsCalledCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetServerAnalytics(ctx context.Context, serverIpNet pqtype.Inet) (GameServerAnalytic, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.GetServerAnalytics(ctx, serverIpNet)
}
