package app

import "go-grid-defense/internal/event"

// runStats counts enemy outcomes from the event stream.
type runStats struct {
	kills int
	leaks int
}

func (s *runStats) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	switch e.Data.(event.EnemyDestroyedData).Cause {
	case event.Killed:
		s.kills++
	case event.ReachedBase:
		s.leaks++
	}
}
