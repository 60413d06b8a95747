// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final board. R starts a new round from the same
// factory.
type GameOverState struct {
	sm    *StateMachine
	final *PlayState
}

func NewGameOverState(sm *StateMachine, final *PlayState) *GameOverState {
	return &GameOverState{sm: sm, final: final}
}

func (s *GameOverState) Enter() {
	g := s.final.game
	s.final.log.Info("game over",
		zap.Float64("survived", g.Now()),
		zap.Int("towers", g.ECS.Towers.Len()),
		zap.Int("coins", g.Currency()),
	)
}

func (s *GameOverState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return
	}
	next, err := NewPlayState(s.sm, s.final.factory)
	if err != nil {
		s.final.log.Error("restart failed", zap.Error(err))
		return
	}
	s.sm.SetState(next)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.final.Draw(screen)
	msg := fmt.Sprintf("BASE DESTROYED after %.1fs - press R to restart", s.final.game.Now())
	s.final.renderer.DrawBanner(screen, msg)
}

func (s *GameOverState) Exit() {}
