package armature

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix [a, b, c, d, tx, ty]
// of n. The y axis is turned by Rotation and the x axis by Rotation+Skew,
// each then scaled, so an unskewed node is a plain rotate-scale. The pivot
// is the point of the node that lands on (X, Y).
func computeLocalTransform(n *Node) [6]float64 {
	sinX, cosX := math.Sincos(n.Rotation + n.Skew)
	sinY, cosY := math.Sincos(n.Rotation)

	a := cosX * n.ScaleX
	b := sinX * n.ScaleX
	c := -sinY * n.ScaleY
	d := cosY * n.ScaleY

	return [6]float64{
		a, b, c, d,
		n.X - (a*n.PivotX + c*n.PivotY),
		n.Y - (b*n.PivotX + d*n.PivotY),
	}
}

// multiplyAffine returns p * c, with matrices laid out as
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes the world matrix of every dirty node under
// n. A recomputed parent forces its whole subtree.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetRotation sets the node's rotation in radians and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty forces the node's world matrix to be recomputed on the next
// refresh. Players call it after writing X, Y or Rotation directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// applyTransform copies an authored DragonBones transform onto the node.
func (n *Node) applyTransform(t Transform) {
	n.X, n.Y = t.X, t.Y
	n.ScaleX, n.ScaleY = t.ScaleX, t.ScaleY
	n.Rotation = t.Rotation()
	n.Skew = t.Skew()
	n.transformDirty = true
}

// WorldTransform returns the world matrix computed on the last refresh.
func (n *Node) WorldTransform() [6]float64 {
	return n.worldTransform
}

// WorldOrigin returns where the node's local origin sits in world space as
// of the last refresh.
func (n *Node) WorldOrigin() (x, y float64) {
	return n.worldTransform[4], n.worldTransform[5]
}
