package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/vmath"
)

// Wall is a static vertical collider spanning segment AB in the XZ plane
type Wall struct {
	A, B          mgl64.Vec2
	HalfThickness float64
	Height        float64
}

// ResolveWall pushes the body out of the wall and reflects the normal
// velocity component, returns true on contact
func ResolveWall(b *RigidBody, w Wall, restitution, friction float64) bool {
	p := mgl64.Vec2{b.position.X(), b.position.Z()}
	c, _ := vmath.ClosestOnSegment(p, w.A, w.B)
	delta := p.Sub(c)
	dist := delta.Len()
	minDist := b.Radius + w.HalfThickness
	if dist >= minDist || dist == 0 {
		return false
	}

	n := delta.Mul(1 / dist)
	p = c.Add(n.Mul(minDist))
	b.position[0], b.position[2] = p.X(), p.Y()

	v := mgl64.Vec2{b.linearVelocity.X(), b.linearVelocity.Z()}
	vn := v.Dot(n)
	if vn < 0 {
		normal := n.Mul(vn)
		tangent := v.Sub(normal).Mul(friction)
		v = tangent.Sub(normal.Mul(restitution))
		b.linearVelocity[0], b.linearVelocity[2] = v.X(), v.Y()
	}
	return true
}

// ResolveGround keeps the collider on top of the ground plane, returns true on contact
func ResolveGround(b *RigidBody, groundY float64) bool {
	bottom := b.position.Y() - b.HalfExtents.Y()
	if bottom > groundY {
		return false
	}
	b.position[1] = groundY + b.HalfExtents.Y()
	if b.linearVelocity.Y() < 0 {
		b.linearVelocity[1] = 0
	}
	return true
}
