package bounce

import (
	"fmt"

	"github.com/vovakirdan/bounce-joy/internal/core"
)

// span is a length measured against the brick area:
//
//	Frac*extent + Thick*wallThickness + Cells*brickSize + Px
type span struct {
	Frac  float64
	Thick float64
	Cells float64
	Px    float64
}

func (s span) eval(extent float64, g Grid) float64 {
	return s.Frac*extent + s.Thick*g.Thickness + s.Cells*g.BrickSize + s.Px
}

// wallSpec places one wall relative to the grid's top-left corner.
type wallSpec struct {
	X, Y, W, H span
	Interior   bool
}

func (w wallSpec) build(g Grid) Wall {
	return Wall{
		Rect: core.NewRectF(
			g.StartX+w.X.eval(g.AreaW, g),
			g.StartY+w.Y.eval(g.AreaH, g),
			w.W.eval(g.AreaW, g),
			w.H.eval(g.AreaH, g),
		),
		Interior: w.Interior,
	}
}

// Layout describes one level design.
type Layout struct {
	Name        string
	HeightRatio float64 // Share of canvas height covered by the grid
	Walls       []wallSpec

	// Include rejects cells outside the layout's brick region. Nil accepts all.
	Include func(g Grid, row int, cell core.RectF) bool

	// CycleColors picks row colors by row index instead of at random.
	CycleColors bool
}

func (l Layout) walls(g Grid) []Wall {
	out := make([]Wall, len(l.Walls))
	for i, spec := range l.Walls {
		out[i] = spec.build(g)
	}
	return out
}

func (l Layout) includes(g Grid, row int, cell core.RectF) bool {
	return l.Include == nil || l.Include(g, row, cell)
}

func (l Layout) rowColor(row int, palette []core.Color, rng *core.RNG) core.Color {
	if l.CycleColors {
		return palette[row%len(palette)]
	}
	return core.Choice(rng, palette)
}

// Common wall pieces.
var (
	thick    = span{Thick: 1}
	outside  = span{Thick: -1} // One wall thickness before the area
	fullSpan = span{Frac: 1}
)

// openFortress: full top wall, side walls with a gap across the middle
// fifth, bottom wall with a wide center entrance and two interior baffles.
var openFortress = Layout{
	Name:        "Open Fortress",
	HeightRatio: 0.55,
	Walls: []wallSpec{
		{X: outside, Y: outside, W: span{Frac: 1, Thick: 2}, H: thick},
		{X: outside, Y: span{}, W: thick, H: span{Frac: 0.4}},
		{X: outside, Y: span{Frac: 0.6}, W: thick, H: span{Frac: 0.4}},
		{X: fullSpan, Y: span{}, W: thick, H: span{Frac: 0.4}},
		{X: fullSpan, Y: span{Frac: 0.6}, W: thick, H: span{Frac: 0.4}},
		{X: outside, Y: fullSpan, W: span{Frac: 0.35, Thick: 1}, H: thick},
		{X: span{Frac: 0.65}, Y: fullSpan, W: span{Frac: 0.35, Thick: 1}, H: thick},
		{X: span{Frac: 0.2}, Y: span{Frac: 0.3}, W: span{Frac: 0.25}, H: thick, Interior: true},
		{X: span{Frac: 0.55}, Y: span{Frac: 0.5}, W: span{Frac: 0.25}, H: thick, Interior: true},
	},
}

const (
	canyonSegments = 5
	canyonStep     = 0.08 // Inward step per segment, as a share of area width
	canyonOverlap  = 2    // Extra segment height so steps join
)

// vCanyon: top wall with a wide center gap, side walls stepping inward
// to form a V, open bottom, two interior obstacles.
var vCanyon = Layout{
	Name:        "V Canyon",
	HeightRatio: 0.5,
	Walls:       canyonWalls(),
	Include: func(g Grid, row int, cell core.RectF) bool {
		inset := float64(row) / float64(g.Rows) * canyonStep * canyonSegments * g.AreaW
		return cell.X >= g.StartX+inset && cell.Right() <= g.StartX+g.AreaW-inset
	},
}

func canyonWalls() []wallSpec {
	walls := []wallSpec{
		{X: outside, Y: outside, W: span{Frac: 0.3, Thick: 1}, H: thick},
		{X: span{Frac: 0.7}, Y: outside, W: span{Frac: 0.3, Thick: 1}, H: thick},
	}
	segH := span{Frac: 1.0 / canyonSegments, Px: canyonOverlap}
	for i := 0; i < canyonSegments; i++ {
		step := float64(i) * canyonStep
		y := span{Frac: float64(i) / canyonSegments}
		walls = append(walls,
			wallSpec{X: span{Frac: step, Thick: -1}, Y: y, W: thick, H: segH},
			wallSpec{X: span{Frac: 1 - step}, Y: y, W: thick, H: segH},
		)
	}
	return append(walls,
		wallSpec{X: span{Frac: 0.15}, Y: span{Frac: 0.35}, W: span{Frac: 0.3}, H: thick, Interior: true},
		wallSpec{X: span{Frac: 0.55}, Y: span{Frac: 0.55}, W: span{Frac: 0.3}, H: thick, Interior: true},
	)
}

// Ring maze hollow: the inner ring covers 0.3..0.7 of the area on both axes.
const (
	ringStart = 0.3
	ringSize  = 0.4
	ringGap   = 3 // Entrance width in bricks
)

// ringMaze: one entrance on each of top, left and right, a bottom wall
// between two corner entrances and an inner ring around a hollow center.
var ringMaze = Layout{
	Name:        "Ring Maze",
	HeightRatio: 0.55,
	CycleColors: true,
	Walls: []wallSpec{
		{X: outside, Y: outside, W: span{Frac: 0.4, Thick: 1}, H: thick},
		{X: span{Frac: 0.4, Cells: ringGap}, Y: outside, W: span{Frac: 0.6, Cells: -ringGap, Thick: 1}, H: thick},
		{X: outside, Y: span{}, W: thick, H: span{Frac: 0.4}},
		{X: outside, Y: span{Frac: 0.4, Cells: ringGap}, W: thick, H: span{Frac: 0.6, Cells: -ringGap}},
		{X: fullSpan, Y: span{}, W: thick, H: span{Frac: 0.5}},
		{X: fullSpan, Y: span{Frac: 0.5, Cells: ringGap}, W: thick, H: span{Frac: 0.5, Cells: -ringGap}},
		{X: span{Cells: ringGap}, Y: fullSpan, W: span{Frac: 1, Cells: -2 * ringGap}, H: thick},

		// Inner ring
		{X: span{Frac: ringStart}, Y: span{Frac: ringStart}, W: span{Frac: ringSize * 0.4}, H: thick, Interior: true},
		{X: span{Frac: ringStart + ringSize*0.6}, Y: span{Frac: ringStart}, W: span{Frac: ringSize * 0.4}, H: thick, Interior: true},
		{X: span{Frac: ringStart}, Y: span{Frac: ringStart + ringSize}, W: span{Frac: ringSize}, H: thick, Interior: true},
		{X: span{Frac: ringStart}, Y: span{Frac: ringStart}, W: thick, H: span{Frac: ringSize * 0.4}, Interior: true},
		{X: span{Frac: ringStart}, Y: span{Frac: ringStart + ringSize*0.6}, W: thick, H: span{Frac: ringSize * 0.4}, Interior: true},
		{X: span{Frac: ringStart + ringSize}, Y: span{Frac: ringStart}, W: thick, H: span{Frac: ringSize, Thick: 1}, Interior: true},
	},
	Include: func(g Grid, _ int, cell core.RectF) bool {
		x0 := g.StartX + g.AreaW*ringStart
		y0 := g.StartY + g.AreaH*ringStart
		inHollow := cell.X >= x0 && cell.X <= x0+g.AreaW*ringSize &&
			cell.Y >= y0 && cell.Y <= y0+g.AreaH*ringSize
		return !inHollow
	},
}

var layouts = []Layout{openFortress, vCanyon, ringMaze}

// LayoutCount returns the number of distinct level designs.
func LayoutCount() int {
	return len(layouts)
}

// LayoutFor returns the layout for a 1-based level number. In endless mode
// level numbers past the last layout wrap around.
func LayoutFor(level int, endless bool) (Layout, error) {
	if level < 1 {
		return Layout{}, fmt.Errorf("bounce: level %d: %w", level, ErrUnknownLevel)
	}
	idx := level - 1
	if endless {
		idx %= len(layouts)
	}
	if idx >= len(layouts) {
		return Layout{}, fmt.Errorf("bounce: level %d of %d: %w", level, len(layouts), ErrUnknownLevel)
	}
	return layouts[idx], nil
}
