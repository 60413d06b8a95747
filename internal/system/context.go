package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/event"
)

// Context is the per-level mutable state every system reads. It is threaded
// through each Update call instead of living in package globals, so two games
// never share a clock or a wallet.
type Context struct {
	Now      float64 // simulation seconds
	Tick     uint64
	Currency int
	Phase    component.Phase
}

// AddCoins changes the wallet and announces the change. Zero deltas are dropped.
func (c *Context) AddCoins(delta int, d *event.Dispatcher) {
	if delta == 0 {
		return
	}
	old := c.Currency
	c.Currency += delta
	d.Dispatch(event.Event{
		Type: event.CurrencyChanged,
		Data: event.CurrencyChangedData{Old: old, New: c.Currency},
	})
}
