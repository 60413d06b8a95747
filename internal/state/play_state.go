// internal/state/play_state.go
package state

import (
	"errors"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/render"
	"go-grid-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// GameFactory builds a fresh level for a new round.
type GameFactory func() (*app.Game, error)

var _ State = (*PlayState)(nil)

// PlayState ticks the simulation and turns clicks into tower placements.
type PlayState struct {
	sm       *StateMachine
	factory  GameFactory
	game     *app.Game
	renderer *render.Renderer
	log      *zap.Logger
}

func NewPlayState(sm *StateMachine, factory GameFactory) (*PlayState, error) {
	g, err := factory()
	if err != nil {
		return nil, err
	}
	return &PlayState{
		sm:       sm,
		factory:  factory,
		game:     g,
		renderer: render.NewRenderer(g, config.ScreenWidth, config.ScreenHeight),
		log:      g.Logger(),
	}, nil
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		placeAt(s.game, s.log, x, y)
	}

	s.game.Update(deltaTime)

	if s.game.IsOver() {
		s.sm.SetState(NewGameOverState(s.sm, s))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	s.renderer.Draw(screen, cursorCell(x, y))
}

func (s *PlayState) Exit() {}

func (s *PlayState) Game() *app.Game { return s.game }

// cursorCell maps a cursor pixel to the grid cell under it.
func cursorCell(x, y int) grid.Coord {
	return grid.CellAt(float64(x), float64(y), config.ScreenWidth, config.ScreenHeight)
}

// placeAt tries to build a tower under the cursor. Rejections are normal
// player input and only logged at debug level.
func placeAt(g interfaces.Game, log *zap.Logger, x, y int) {
	cell := cursorCell(x, y)
	if _, err := g.PlaceTower(cell); err != nil {
		if errors.Is(err, app.ErrNotBuildSpot) {
			return
		}
		log.Debug("tower rejected", zap.Stringer("cell", cell), zap.Error(err))
	}
}
