package host

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/keys/internal/render"
)

// Upper half block, foreground is the top pixel and background the bottom
const halfBlock = "▀"

type cell struct {
	top, bottom uint32
}

// Encoder downsamples a buffer to a grid of terminal cells, two pixels
// per cell, and writes escapes for the cells that changed.
type Encoder struct {
	cols, rows int
	prev       []cell
	valid      bool
}

func NewEncoder(cols, rows int) *Encoder {
	e := &Encoder{}
	e.Resize(cols, rows)
	return e
}

// Resize forgets the previous frame when the grid changes.
func (e *Encoder) Resize(cols, rows int) {
	if cols == e.cols && rows == e.rows {
		return
	}
	e.cols, e.rows = cols, rows
	e.prev = make([]cell, cols*rows)
	e.valid = false
}

// sample returns the brightest pixel of the region [x0, x1) x [y0, y1).
func sample(b *render.Buffer, x0, y0, x1, y1 int) uint32 {
	var best, bestLuma uint32
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := b.At(x, y)
			luma := (c>>16&0xff)*2 + (c>>8&0xff)*3 + c&0xff
			if luma > bestLuma {
				best, bestLuma = c, luma
			}
		}
	}
	return best
}

// span splits size into n parts and returns part i, never empty.
func span(i, n, size int) (int, int) {
	lo, hi := i*size/n, (i+1)*size/n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (e *Encoder) Encode(sb *strings.Builder, b *render.Buffer) {
	if e.cols <= 0 || e.rows <= 0 {
		return
	}
	dirty := false
	if !e.valid {
		sb.WriteString("\033[0m\033[2J")
	}
	for r := 0; r < e.rows; r++ {
		t0, t1 := span(2*r, 2*e.rows, b.Height)
		b0, b1 := span(2*r+1, 2*e.rows, b.Height)
		for c := 0; c < e.cols; c++ {
			x0, x1 := span(c, e.cols, b.Width)
			next := cell{
				top:    sample(b, x0, t0, x1, t1),
				bottom: sample(b, x0, b0, x1, b1),
			}
			i := r*e.cols + c
			if e.valid && e.prev[i] == next {
				continue
			}
			e.prev[i] = next
			fill(sb, r+1, c+1, next)
			dirty = true
		}
	}
	if dirty {
		sb.WriteString("\033[0m")
	}
	e.valid = true
}

func writeColor(sb *strings.Builder, c uint32) {
	sb.WriteString(strconv.FormatUint(uint64(c>>16&0xff), 10))
	sb.WriteString(";")
	sb.WriteString(strconv.FormatUint(uint64(c>>8&0xff), 10))
	sb.WriteString(";")
	sb.WriteString(strconv.FormatUint(uint64(c&0xff), 10))
}

func fill(sb *strings.Builder, row, column int, c cell) {
	sb.WriteString("\033[")
	sb.WriteString(strconv.Itoa(row))
	sb.WriteString(";")
	sb.WriteString(strconv.Itoa(column))
	sb.WriteString("H\033[38;2;")
	writeColor(sb, c.top)
	sb.WriteString("m\033[48;2;")
	writeColor(sb, c.bottom)
	sb.WriteString("m")
	sb.WriteString(halfBlock)
}
