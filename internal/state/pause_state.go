// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the level by not ticking it; the last frame stays on
// screen under an overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.log.Debug("paused")
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.renderer.DrawBanner(screen, "PAUSED - press P to resume")
}

func (s *PauseState) Exit() {}
