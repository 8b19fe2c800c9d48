package physics

import (
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// World integrates its dynamic bodies against static colliders
type World struct {
	Gravity     float64
	GroundY     float64
	Restitution float64
	Friction    float64

	bodies []*RigidBody
	walls  []Wall

	contacts int // wall contacts during the last Step
}

// NewWorld creates a world with default gravity and wall response
func NewWorld() *World {
	return &World{
		Gravity:     parameter.Gravity,
		Restitution: parameter.WallRestitution,
		Friction:    parameter.WallFriction,
	}
}

// AddBody registers a dynamic body
func (w *World) AddBody(b *RigidBody) {
	w.bodies = append(w.bodies, b)
}

// SetWalls replaces the static colliders
func (w *World) SetWalls(walls []Wall) {
	w.walls = walls
}

// Walls returns the static colliders
func (w *World) Walls() []Wall {
	return w.walls
}

// Contacts returns the wall contact count of the last step
func (w *World) Contacts() int {
	return w.contacts
}

// Step advances every body by dt seconds
func (w *World) Step(dt float64) {
	w.contacts = 0
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		Integrate(b, w.Gravity, dt)
		ResolveGround(b, w.GroundY)
		for _, wall := range w.walls {
			if ResolveWall(b, wall, w.Restitution, w.Friction) {
				w.contacts++
			}
		}
	}
}

// Integrate performs semi-implicit Euler: v = v + g*dt; p = p + v*dt
// Yaw follows the vertical angular velocity
func Integrate(b *RigidBody, gravity, dt float64) {
	b.linearVelocity[1] += gravity * dt
	b.position = b.position.Add(b.linearVelocity.Mul(dt))

	if wy := b.angularVelocity.Y(); wy != 0 {
		yaw := vmath.QuatYaw(b.rotation) + wy*dt
		b.rotation = vmath.YawQuat(yaw)
	}
}

// Speed returns the horizontal speed of a body
func Speed(b Body) float64 {
	return vmath.HorizontalSpeed(b.LinearVelocity())
}

var _ Body = (*RigidBody)(nil)
