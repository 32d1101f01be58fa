package bounce

import "github.com/vovakirdan/bounce-joy/internal/core"

// Terminal playfield geometry. The canvas keeps a 9:16 aspect ratio; a
// terminal cell is about twice as tall as it is wide and is split into two
// half-block subpixels, so a playfield of c columns spans 16c/9 subpixel rows.
const (
	CellWidth    = 12.0 // Canvas pixels per terminal column
	MaxViewCols  = 37   // Keeps the canvas at most 450 pixels wide
	MinViewCols  = 20
	MinViewRows  = 12
	hudRows      = 1 // Score line above the playfield
	footerRows   = 1 // Hint or ball count below it
	aspectW      = 9
	aspectH      = 16
	subpixelRows = 2
)

// Viewport places the canvas inside a terminal screen.
type Viewport struct {
	X, Y       int // Top-left cell of the playfield
	Cols, Rows int
	CanvasW    float64
	CanvasH    float64
}

// CanvasForTerminal fits the largest 9:16 playfield into a screen of
// cols x rows cells. It returns false if the screen is too small to play.
func CanvasForTerminal(cols, rows int) (Viewport, bool) {
	vr := rows - hudRows - footerRows
	vc := vr * subpixelRows * aspectW / aspectH
	if vc > cols {
		vc = cols
	}
	if vc > MaxViewCols {
		vc = MaxViewCols
	}
	vr = core.Min(vr, (vc*aspectH+aspectW*subpixelRows-1)/(aspectW*subpixelRows))
	if vc < MinViewCols || vr < MinViewRows {
		return Viewport{}, false
	}

	w := float64(vc) * CellWidth
	return Viewport{
		X:       (cols - vc) / 2,
		Y:       hudRows,
		Cols:    vc,
		Rows:    vr,
		CanvasW: w,
		CanvasH: w * aspectH / aspectW,
	}, true
}

// CellW returns the canvas width of one column.
func (v Viewport) CellW() float64 {
	return v.CanvasW / float64(v.Cols)
}

// SubpixelH returns the canvas height of one half-block.
func (v Viewport) SubpixelH() float64 {
	return v.CanvasH / float64(v.Rows*subpixelRows)
}

// ToCanvasX maps a screen column to the canvas X of its center.
func (v Viewport) ToCanvasX(col int) float64 {
	return core.ClampF((float64(col-v.X)+0.5)*v.CellW(), 0, v.CanvasW)
}

// ToCell maps a canvas point to the screen cell containing it.
func (v Viewport) ToCell(p core.Vec) (col, row int, ok bool) {
	if p.X < 0 || p.Y < 0 || p.X >= v.CanvasW || p.Y >= v.CanvasH {
		return 0, 0, false
	}
	col = int(p.X / v.CellW())
	row = int(p.Y / (v.SubpixelH() * subpixelRows))
	// Rounding can land a point on the far edge
	if !core.NewRect(0, 0, v.Cols, v.Rows).Contains(col, row) {
		return 0, 0, false
	}
	return v.X + col, v.Y + row, true
}

// raster is a half-block subpixel buffer covering the playfield.
type raster struct {
	v    Viewport
	w, h int
	px   []core.Color // core.ColorDefault means empty
}

func newRaster(v Viewport) *raster {
	w, h := v.Cols, v.Rows*subpixelRows
	return &raster{v: v, w: w, h: h, px: make([]core.Color, w*h)}
}

// fillRect colors every subpixel the rectangle touches.
func (r *raster) fillRect(rect core.RectF, c core.Color) {
	cw, sh := r.v.CellW(), r.v.SubpixelH()
	x0 := core.Clamp(int(rect.X/cw), 0, r.w)
	x1 := core.Clamp(int((rect.Right()+cw-1e-9)/cw), 0, r.w)
	y0 := core.Clamp(int(rect.Y/sh), 0, r.h)
	y1 := core.Clamp(int((rect.Bottom()+sh-1e-9)/sh), 0, r.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.px[y*r.w+x] = c
		}
	}
}

// plot colors the subpixel containing p.
func (r *raster) plot(p core.Vec, c core.Color) {
	x := int(p.X / r.v.CellW())
	y := int(p.Y / r.v.SubpixelH())
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.px[y*r.w+x] = c
}

// blit writes the buffer to the screen using half-block glyphs. Cells keep a
// single color, so a cell with two different halves takes the top color.
func (r *raster) blit(dst *core.Screen) {
	for row := 0; row < r.v.Rows; row++ {
		for col := 0; col < r.w; col++ {
			top := r.px[(row*2)*r.w+col]
			bottom := r.px[(row*2+1)*r.w+col]
			x, y := r.v.X+col, r.v.Y+row
			switch {
			case top == core.ColorDefault && bottom == core.ColorDefault:
				continue
			case bottom == core.ColorDefault:
				dst.SetColored(x, y, '▀', top)
			case top == core.ColorDefault:
				dst.SetColored(x, y, '▄', bottom)
			default:
				dst.SetColored(x, y, '█', top)
			}
		}
	}
}
