// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/logger"
	"go-grid-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelPath := flag.String("level", "", "level file (.yaml, .yml or .json); empty uses the built-in map")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	skipMenu := flag.Bool("play", false, "skip the title screen")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	log, err := logger.New(*logLevel, true)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if *pprofAddr != "" {
		go func() {
			log.Warn("pprof server stopped", zap.Error(http.ListenAndServe(*pprofAddr, nil)))
		}()
	}

	level := defs.DefaultLevel()
	if *levelPath != "" {
		if level, err = defs.LoadLevel(*levelPath); err != nil {
			log.Fatal("cannot load level", zap.String("path", *levelPath), zap.Error(err))
		}
	}
	factory := func() (*app.Game, error) {
		return app.NewGame(level, app.WithLogger(log))
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		play, err := state.NewPlayState(sm, factory)
		if err != nil {
			log.Fatal("cannot start level", zap.Error(err))
		}
		sm.SetState(play)
	} else {
		sm.SetState(state.NewMenuState(sm, factory, "Grid Defense: "+level.Name, log))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal("game loop failed", zap.Error(err))
	}
}
