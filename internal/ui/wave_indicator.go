// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave number in Roman numerals.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

func NewWaveIndicator(x, y int, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{0, 128, 255, 255},
		OutlineColor:     color.White,
		OutlineThickness: 1,
		fontFace:         fontFace,
	}
}

// ToRoman converts a positive integer to Roman numerals.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw centers the numeral on X. Wave 0 (no schedule) draws nothing; the
// endless tail is marked with a trailing "+".
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, endless bool) {
	label := ToRoman(waveNumber)
	if label == "" {
		return
	}
	if endless {
		label += "+"
	}

	textX := i.X - text.BoundString(i.fontFace, label).Dx()/2
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, textX+x, i.Y+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, textX, i.Y, i.Color)
}
