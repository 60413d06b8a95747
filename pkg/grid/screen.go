package grid

import "math"

// CellAt maps a screen pixel to the cell under it. The world origin is drawn at the
// center of a screenW x screenH viewport.
func CellAt(screenX, screenY float64, screenW, screenH int) Coord {
	halfW := float64(screenW) * 0.5
	halfH := float64(screenH) * 0.5
	return Coord{
		X: int(math.Floor((screenX - halfW + HalfCellSize) / CellSize)),
		Y: int(math.Floor((screenY - halfH + HalfCellSize) / CellSize)),
	}
}

// ScreenOf maps a world position to screen pixels for the same viewport convention.
func ScreenOf(p Vec2, screenW, screenH int) (float64, float64) {
	return p.X + float64(screenW)*0.5, p.Y + float64(screenH)*0.5
}
