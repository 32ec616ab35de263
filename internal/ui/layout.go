package ui

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// RowLayout places one row: the label above its slider.
type RowLayout struct {
	Label  Rect
	Slider Rect
}

type Layout struct {
	Bounds Rect
	Rows   []RowLayout
}

// Place centers the panel on the screen point (cx, cy), stacks its rows top
// to bottom and remembers the result for hit testing.
func (p *Panel) Place(cx, cy float32) Layout {
	bounds := Rect{X: cx - p.Width/2, Y: cy - p.Height/2, Width: p.Width, Height: p.Height}
	l := Layout{Bounds: bounds, Rows: make([]RowLayout, 0, len(p.rows))}

	// Whatever the rows leave over is split above and below them.
	used := float32(0)
	for _, r := range p.rows {
		used += r.Height
	}
	y := bounds.Y + (p.Height-used)/2
	for _, r := range p.rows {
		label := Rect{X: bounds.X + 4, Y: y, Width: p.Width - 8, Height: r.Label.Height}
		slider := Rect{X: bounds.X + 4, Y: y + r.Label.Height, Width: p.Width - 8, Height: r.Slider.Height}
		l.Rows = append(l.Rows, RowLayout{Label: label, Slider: slider})
		y += r.Height
	}

	p.bounds = bounds
	p.placed = true
	return l
}

// Unplace drops the remembered layout, for anchors that are off screen.
func (p *Panel) Unplace() {
	p.placed = false
}

// Bounds returns the last placed rectangle, if the panel has one.
func (p *Panel) Bounds() (Rect, bool) {
	return p.bounds, p.placed
}

// Hit reports whether (x, y) is over any visible, placed panel.
func (r *Root) Hit(x, y float32) bool {
	for _, p := range r.panels {
		if p.Visible && p.placed && p.bounds.Contains(x, y) {
			return true
		}
	}
	return false
}
