// internal/ui/base_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 3.0
)

var (
	healthFullColor  = color.RGBA{0, 128, 255, 255}
	healthLowColor   = color.RGBA{220, 40, 40, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// BaseHealthIndicator draws base health as a grid of pips, one per point.
type BaseHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewBaseHealthIndicator(x, y float32, fontFace font.Face) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw renders the pips and a "current/max" caption above them. Filled pips
// turn red once the base is at half health or below.
func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, h component.Health) {
	const step = HealthCircleRadius*2 + HealthCircleSpacing
	fill := healthFullColor
	if h.Current*2 <= h.Max {
		fill = healthLowColor
	}

	for j := 0; j < h.Max; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := i.Y + float32(j/HealthCols)*step + HealthCircleRadius
		c := healthEmptyColor
		if j < h.Current {
			c = fill
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	caption := fmt.Sprintf("%d/%d", max(h.Current, 0), h.Max)
	text.Draw(screen, caption, i.fontFace, int(i.X), int(i.Y)-4, config.TextLightColor)
}

// Height is the pixel height of the pip grid.
func (i *BaseHealthIndicator) Height(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return float32(rows) * (HealthCircleRadius*2 + HealthCircleSpacing)
}
