// internal/interfaces/game_context.go
package interfaces

// GameContext is the slice of the game that systems may call back into
// without importing the app package.
type GameContext interface {
	ClearProjectiles()
}
