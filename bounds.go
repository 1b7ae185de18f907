package armature

import "math"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// WorldBounds returns the world-space axis-aligned bounds of a sprite's
// region, as of the last transform refresh. Containers have no bounds.
func (n *Node) WorldBounds() (Rect, bool) {
	if n.Type != NodeTypeSprite {
		return Rect{}, false
	}
	w := float64(n.TextureRegion.Width)
	h := float64(n.TextureRegion.Height)
	return aabb(n.worldTransform, w, h), true
}

// aabb transforms the local rectangle (0, 0, w, h) by m and returns its
// axis-aligned bounds.
func aabb(m [6]float64, w, h float64) Rect {
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, w, 0)
	x2, y2 := transformPoint(m, w, h)
	x3, y3 := transformPoint(m, 0, h)
	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// SubtreeBounds returns the union of the world bounds of every visible
// sprite under n, n included. ok is false when there is none.
func (n *Node) SubtreeBounds() (r Rect, ok bool) {
	n.Walk(func(d *Node) bool {
		if !d.Visible {
			return false
		}
		b, has := d.WorldBounds()
		if !has {
			return true
		}
		if !ok {
			r, ok = b, true
		} else {
			r = r.Union(b)
		}
		return true
	})
	return r, ok
}
