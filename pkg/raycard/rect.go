package raycard

// Rect is an axis-aligned bounding box in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Width  float64
	Height float64
}

// NewRect builds a Rect from an origin and a size. Negative sizes are
// normalised so that Left <= Right and Top <= Bottom.
func NewRect(x, y, width, height float64) Rect {
	if width < 0 {
		x += width
		width = -width
	}
	if height < 0 {
		y += height
		height = -height
	}
	return Rect{
		Left:   x,
		Top:    y,
		Right:  x + width,
		Bottom: y + height,
		Width:  width,
		Height: height,
	}
}

// Contains reports whether (x, y) lies inside the closed rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right &&
		y >= r.Top && y <= r.Bottom
}

// PointerEvent is a single pointer sample in viewport coordinates.
type PointerEvent struct {
	ClientX float64
	ClientY float64
}
