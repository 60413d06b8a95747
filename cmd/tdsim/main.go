// cmd/tdsim/main.go
//
// tdsim plays levels without a window and prints one line per run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	seconds := flag.Float64("seconds", 300, "simulated seconds per run")
	seed := flag.Int64("seed", 1, "seed for tower placement")
	runs := flag.Int("runs", 1, "runs per level; run i uses seed+i")
	auto := flag.Bool("auto", true, "buy towers automatically")
	parallel := flag.Int("parallel", runtime.NumCPU(), "runs in flight")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	flag.Parse()

	log, err := logger.New(*logLevel, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if !(*seconds > 0) {
		log.Fatal("seconds must be positive", zap.Float64("seconds", *seconds))
	}

	levels, err := loadLevels(flag.Args())
	if err != nil {
		log.Fatal("cannot load level", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]app.Result, len(levels)*(*runs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(*parallel)
	for li, level := range levels {
		level := level
		for r := 0; r < *runs; r++ {
			slot := li*(*runs) + r
			cfg := app.RunConfig{
				Seconds:   *seconds,
				AutoBuild: *auto,
				Seed:      *seed + int64(r),
				Logger:    log,
			}
			eg.Go(func() error {
				res, err := app.RunHeadless(ctx, level, cfg)
				if err != nil {
					return fmt.Errorf("level %q run %d: %w", level.Name, slot, err)
				}
				results[slot] = res
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		log.Fatal("simulation failed", zap.Error(err))
	}

	fmt.Printf("%-12s %8s %6s %6s %6s %6s %6s  %s\n", "LEVEL", "TIME", "OVER", "TOWERS", "KILLS", "LEAKS", "BASE", "CHECKSUM")
	for _, r := range results {
		fmt.Printf("%-12s %8.1f %6t %6d %6d %6d %6d  %016x\n",
			r.Level, r.Survived, r.GameOver, r.Towers, r.Kills, r.Leaks, r.BaseLeft, r.Checksum)
	}
}

func loadLevels(paths []string) ([]*defs.Level, error) {
	if len(paths) == 0 {
		return []*defs.Level{defs.DefaultLevel()}, nil
	}
	levels := make([]*defs.Level, 0, len(paths))
	for _, p := range paths {
		l, err := defs.LoadLevel(p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}
