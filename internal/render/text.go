package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is the built in 7x13 bitmap font.
var DefaultFace font.Face = basicfont.Face7x13

// LineHeight is the distance between baselines of consecutive lines.
func LineHeight(face font.Face) int {
	return int(float64(face.Metrics().Height.Ceil()) * 1.2)
}

// DrawText rasterizes text with its top left corner at (x, y), each font
// pixel drawn as a scale × scale square. Runes the face lacks are drawn as '?'.
func DrawText(b *Buffer, face font.Face, x, y, scale int, c uint32, text string) {
	if scale < 1 {
		scale = 1
	}
	dot := fixed.P(0, face.Metrics().Ascent.Ceil())
	offsetX, offsetY := 0, 0
	for _, r := range text {
		if r == '\n' {
			offsetY += LineHeight(face) * scale
			offsetX = 0
			continue
		}

		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			dr, mask, maskp, advance, ok = face.Glyph(dot, '?')
			if !ok {
				continue
			}
		}

		for gy := dr.Min.Y; gy < dr.Max.Y; gy++ {
			for gx := dr.Min.X; gx < dr.Max.X; gx++ {
				_, _, _, a := mask.At(maskp.X+gx-dr.Min.X, maskp.Y+gy-dr.Min.Y).RGBA()
				if a < 0x8000 {
					continue
				}
				px, py := x+offsetX+gx*scale, y+offsetY+gy*scale
				b.Fill(px, py, px+scale, py+scale, c)
			}
		}
		offsetX += advance.Ceil() * scale
	}
}
