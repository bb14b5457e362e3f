package render

import (
	"image"
)

// Buffer is a row-major pixel buffer, each pixel packed 0xRRGGBB.
type Buffer struct {
	Width, Height int
	Pix           []uint32
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

func (b *Buffer) Clear() {
	for i := range b.Pix {
		b.Pix[i] = 0
	}
}

func (b *Buffer) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Set writes a pixel, coordinates outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c uint32) {
	if b.in(x, y) {
		b.Pix[y*b.Width+x] = c
	}
}

func (b *Buffer) At(x, y int) uint32 {
	if !b.in(x, y) {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Fill paints [x0, x1) × [y0, y1) clipped to the buffer.
func (b *Buffer) Fill(x0, y0, x1, y1 int, c uint32) {
	x0, x1 = clamp(x0, 0, b.Width), clamp(x1, 0, b.Width)
	y0, y1 = clamp(y0, 0, b.Height), clamp(y1, 0, b.Height)
	for y := y0; y < y1; y++ {
		row := b.Pix[y*b.Width : (y+1)*b.Width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// Blit copies img with its top left corner at (x, y).
// Fully transparent pixels are skipped, everything else overwrites.
func (b *Buffer) Blit(x, y int, img image.Image) {
	bounds := img.Bounds()
	for iy := bounds.Min.Y; iy < bounds.Max.Y; iy++ {
		for ix := bounds.Min.X; ix < bounds.Max.X; ix++ {
			r, g, bb, a := img.At(ix, iy).RGBA()
			if a == 0 {
				continue
			}
			b.Set(x+ix-bounds.Min.X, y+iy-bounds.Min.Y, pack(r>>8, g>>8, bb>>8))
		}
	}
}

// RGBA expands the buffer into 4 bytes per pixel, reusing dst when large enough.
func (b *Buffer) RGBA(dst []byte) []byte {
	n := len(b.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range b.Pix {
		dst[i*4] = byte(c >> 16)
		dst[i*4+1] = byte(c >> 8)
		dst[i*4+2] = byte(c)
		dst[i*4+3] = 0xff
	}
	return dst
}

func pack(r, g, b uint32) uint32 {
	return r<<16 | g<<8 | b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
