// internal/state/menu_state.go
package state

import (
	"go-grid-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

// MenuState is the title screen. Space starts the level.
type MenuState struct {
	sm      *StateMachine
	factory GameFactory
	title   string
	log     *zap.Logger
}

func NewMenuState(sm *StateMachine, factory GameFactory, title string, log *zap.Logger) *MenuState {
	return &MenuState{sm: sm, factory: factory, title: title, log: log}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	play, err := NewPlayState(m.sm, m.factory)
	if err != nil {
		m.log.Error("cannot start level", zap.Error(err))
		return
	}
	m.sm.SetState(play)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, m.title, face, 40, config.ScreenHeight/2-10, config.TextLightColor)
	text.Draw(screen, "press SPACE to start", face, 40, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}
