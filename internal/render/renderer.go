// internal/render/renderer.go
package render

import (
	"fmt"
	"image/color"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/ui"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws a game from its snapshot. The static map (path, build spots,
// spawner) is drawn once into mapImage.
type Renderer struct {
	game         *app.Game
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	mapImage     *ebiten.Image
	baseHealth   *ui.BaseHealthIndicator
	wave         *ui.WaveIndicator
	// barrels holds the drawn facing per tower, eased toward the simulated one.
	barrels map[types.EntityID]float64
}

// barrelSmoothing is the share of the remaining arc closed each frame.
const barrelSmoothing = 0.5

func NewRenderer(game *app.Game, screenWidth, screenHeight int) *Renderer {
	r := &Renderer{
		game:         game,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     basicfont.Face7x13,
		barrels:      make(map[types.EntityID]float64),
	}
	r.baseHealth = ui.NewBaseHealthIndicator(float32(screenWidth)-110, 24, r.fontFace)
	r.wave = ui.NewWaveIndicator(screenWidth/2, 20, r.fontFace)
	r.renderMapImage()
	return r
}

func (r *Renderer) FontFace() font.Face { return r.fontFace }

func (r *Renderer) screen(p grid.Vec2) (float32, float32) {
	x, y := grid.ScreenOf(p, r.screenWidth, r.screenHeight)
	return float32(x), float32(y)
}

func (r *Renderer) renderMapImage() {
	r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	r.mapImage.Fill(config.BackgroundColor)

	nodes := r.game.Path.Nodes()
	for i := 0; i+1 < len(nodes); i++ {
		x0, y0 := r.screen(nodes[i].World())
		x1, y1 := r.screen(nodes[i+1].World())
		vector.StrokeLine(r.mapImage, x0, y0, x1, y1, float32(grid.CellSize), config.PathColor, false)
	}
	for _, n := range nodes {
		x, y := r.screen(n.World())
		half := float32(grid.HalfCellSize)
		vector.DrawFilledRect(r.mapImage, x-half, y-half, float32(grid.CellSize), float32(grid.CellSize), config.PathColor, false)
	}

	for _, cell := range r.game.Level.BuildSpots {
		r.drawSpot(r.mapImage, cell, config.BuildSpotColor)
	}

	sx, sy := r.screen(r.game.Path.Start().World())
	vector.DrawFilledCircle(r.mapImage, sx, sy, float32(config.EnemyRadius), config.SpawnerColor, true)
}

func (r *Renderer) drawSpot(dst *ebiten.Image, cell grid.Coord, clr color.Color) {
	x, y := r.screen(cell.World())
	size := float32(config.BuildSpotSize)
	vector.DrawFilledRect(dst, x-size/2, y-size/2, size, size, clr, false)
}

// Draw paints one frame. hover is the cell under the cursor.
func (r *Renderer) Draw(screen *ebiten.Image, hover grid.Coord) {
	screen.DrawImage(r.mapImage, nil)
	snap := r.game.Snapshot()

	if r.game.IsBuildSpot(hover) && r.game.TowerAt(hover) == 0 {
		hoverColor := config.BuildSpotHover
		if !r.game.CanPlaceTower(hover) {
			hoverColor = config.BuildSpotColor
		}
		r.drawSpot(screen, hover, hoverColor)
		x, y := r.screen(hover.World())
		vector.StrokeCircle(screen, x, y, float32(r.game.Tuning.TowerMaxDistance), 1, config.RangeColor, true)
	}

	bx, by := r.screen(r.game.Path.End().World())
	vector.DrawFilledCircle(screen, bx, by, float32(config.BaseRadius), config.BaseColor, true)
	r.drawHealthBar(screen, bx, by-float32(config.BaseRadius)-6, snap.Base)

	for _, e := range snap.Enemies {
		x, y := r.screen(e.Position)
		vector.DrawFilledCircle(screen, x, y, float32(config.EnemyRadius), config.EnemyColor, true)
		r.drawHealthBar(screen, x, y-float32(config.EnemyRadius)-5, e.Health)
	}

	for _, t := range snap.Towers {
		x, y := r.screen(t.Cell.World())
		tip := grid.FromAngle(r.barrelAngle(t.ID, t.Facing)).Scale(config.BarrelLength)
		vector.DrawFilledCircle(screen, x, y, float32(config.TowerRadius), config.TowerColor, true)
		vector.StrokeLine(screen, x, y, x+float32(tip.X), y+float32(tip.Y), 4, config.BarrelColor, true)
	}

	for _, p := range snap.Projectiles {
		x, y := r.screen(p.Position)
		vector.DrawFilledCircle(screen, x, y, float32(config.ProjectileRadius), config.ProjectileColor, true)
	}

	r.drawHUD(screen, snap)
}

// barrelAngle eases the drawn barrel along the shorter arc so frames that
// render faster than the simulation ticks do not jitter.
func (r *Renderer) barrelAngle(id types.EntityID, facing float64) float64 {
	drawn, ok := r.barrels[id]
	if !ok {
		drawn = facing
	} else {
		drawn = utils.LerpAngle(drawn, facing, barrelSmoothing)
	}
	r.barrels[id] = drawn
	return drawn
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, cx, top float32, h component.Health) {
	const width, height = 24, 3
	vector.DrawFilledRect(screen, cx-width/2, top, width, height, config.OverlayColor, false)
	vector.DrawFilledRect(screen, cx-width/2, top, width*float32(h.Fraction()), height, config.EnemyColor, false)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	lines := []string{
		fmt.Sprintf("Coins: %d", snap.Currency),
		fmt.Sprintf("Tower: %d", r.game.Tuning.TowerCost),
		fmt.Sprintf("Time: %.1fs", snap.Now),
		fmt.Sprintf("Towers: %d  Enemies: %d", len(snap.Towers), len(snap.Enemies)),
	}
	for i, line := range lines {
		text.Draw(screen, line, r.fontFace, 10, 20+i*16, config.TextLightColor)
	}
	r.baseHealth.Draw(screen, snap.Base)
	r.wave.Draw(screen, snap.Wave, snap.EndlessWave)
}

// DrawBanner draws a dimmed overlay with a centered message.
func (r *Renderer) DrawBanner(screen *ebiten.Image, msg string) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenWidth), float32(r.screenHeight), config.OverlayColor, false)
	bounds := text.BoundString(r.fontFace, msg)
	x := (r.screenWidth - bounds.Dx()) / 2
	y := r.screenHeight/2 + bounds.Dy()/2
	text.Draw(screen, msg, r.fontFace, x, y, color.White)
}
