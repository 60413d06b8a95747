package app

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"

	"go.uber.org/zap"
)

// ErrInvalidDuration is returned for a run limit that is not a positive,
// finite number of seconds.
var ErrInvalidDuration = errors.New("run length must be a positive number of seconds")

// RunConfig drives an unattended run.
type RunConfig struct {
	Seconds   float64 // simulated time limit
	AutoBuild bool    // spend coins on towers as they come in
	Seed      int64
	Logger    *zap.Logger
}

// Result summarises an unattended run.
type Result struct {
	Level    string
	RunID    string
	Ticks    uint64
	Survived float64
	GameOver bool
	Towers   int
	Coins    int
	Kills    int
	Leaks    int
	BaseLeft int
	Checksum uint64
}

// RunHeadless plays level on a fixed 1/TickRate step until the base falls or
// the time limit is reached.
func RunHeadless(ctx context.Context, level *defs.Level, cfg RunConfig) (Result, error) {
	if !(cfg.Seconds > 0) || math.IsInf(cfg.Seconds, 1) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidDuration, cfg.Seconds)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	stats := &runStats{}
	g, err := NewGame(level, WithLogger(log), WithListener(stats))
	if err != nil {
		return Result{}, err
	}

	var builder *AutoBuilder
	if cfg.AutoBuild {
		builder = NewAutoBuilder(g, cfg.Seed)
	}

	const dt = 1.0 / config.TickRate
	limit := uint64(cfg.Seconds * config.TickRate)
	for g.Tick() < limit && !g.IsOver() {
		if g.Tick()%config.TickRate == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if builder != nil {
			builder.Step(g)
		}
		g.Update(dt)
	}

	snap := g.Snapshot()
	res := Result{
		Level:    level.Name,
		RunID:    g.RunID.String(),
		Ticks:    snap.Tick,
		Survived: snap.Now,
		GameOver: g.IsOver(),
		Towers:   len(snap.Towers),
		Coins:    snap.Currency,
		Kills:    stats.kills,
		Leaks:    stats.leaks,
		BaseLeft: snap.Base.Current,
		Checksum: snap.Checksum(),
	}
	g.Logger().Info("run finished",
		zap.Uint64("ticks", res.Ticks),
		zap.Bool("game_over", res.GameOver),
		zap.Int("kills", res.Kills),
		zap.Int("leaks", res.Leaks),
		zap.Uint64("checksum", res.Checksum),
	)
	return res, nil
}
