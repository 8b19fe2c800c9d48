// Package physics is the rigid-body collaborator of the vehicle controller.
// The controller only depends on the Body interface; RigidBody and World are
// a small reference engine (gravity, a ground plane and static wall segments)
// used by the terminal game, the headless runner and tests.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Body is the state the vehicle controller reads and writes once per tick
type Body interface {
	Position() mgl64.Vec3
	LinearVelocity() mgl64.Vec3
	Rotation() mgl64.Quat
	SetLinearVelocity(v mgl64.Vec3)
	SetRotation(q mgl64.Quat)
	SetAngularVelocity(w mgl64.Vec3)
}

// RigidBody is a single dynamic body with a box collider, rotation locked to yaw
type RigidBody struct {
	position        mgl64.Vec3
	linearVelocity  mgl64.Vec3
	angularVelocity mgl64.Vec3
	rotation        mgl64.Quat

	Mass        float64
	HalfExtents mgl64.Vec3
	Radius      float64 // horizontal footprint for wall contacts
}

// NewRigidBody creates a body at rest with the car collider
func NewRigidBody(position mgl64.Vec3, rotation mgl64.Quat) *RigidBody {
	return &RigidBody{
		position:    position,
		rotation:    rotation.Normalize(),
		Mass:        parameter.VehicleMass,
		HalfExtents: mgl64.Vec3{parameter.ColliderHalfX, parameter.ColliderHalfY, parameter.ColliderHalfZ},
		Radius:      parameter.CarRadius,
	}
}

func (b *RigidBody) Position() mgl64.Vec3        { return b.position }
func (b *RigidBody) LinearVelocity() mgl64.Vec3  { return b.linearVelocity }
func (b *RigidBody) AngularVelocity() mgl64.Vec3 { return b.angularVelocity }
func (b *RigidBody) Rotation() mgl64.Quat        { return b.rotation }

func (b *RigidBody) SetLinearVelocity(v mgl64.Vec3) { b.linearVelocity = v }

// SetRotation keeps only the yaw part, roll and pitch are locked
func (b *RigidBody) SetRotation(q mgl64.Quat) {
	q.V[0], q.V[2] = 0, 0
	if q.Len() == 0 {
		q = mgl64.QuatIdent()
	}
	b.rotation = q.Normalize()
}

// SetAngularVelocity keeps only the vertical component
func (b *RigidBody) SetAngularVelocity(w mgl64.Vec3) {
	b.angularVelocity = mgl64.Vec3{0, w.Y(), 0}
}

// Teleport places the body and clears all motion
func (b *RigidBody) Teleport(position mgl64.Vec3, rotation mgl64.Quat) {
	b.position = position
	b.linearVelocity = mgl64.Vec3{}
	b.angularVelocity = mgl64.Vec3{}
	b.SetRotation(rotation)
}
