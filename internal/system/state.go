package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
)

// StateSystem moves the level into GameOver when the base falls.
type StateSystem struct {
	ctx         *Context
	gameContext interfaces.GameContext
}

func NewStateSystem(ctx *Context, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ctx:         ctx,
		gameContext: gameContext,
	}
	eventDispatcher.Subscribe(event.BaseDestroyed, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.BaseDestroyed {
		s.SwitchToGameOver()
	}
}

func (s *StateSystem) SwitchToGameOver() {
	if s.ctx.Phase == component.GameOver {
		return
	}
	s.ctx.Phase = component.GameOver
	s.gameContext.ClearProjectiles()
}

func (s *StateSystem) Current() component.Phase {
	return s.ctx.Phase
}
