package vehicle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vmath"
)

const dt = 1.0 / 60

// fakeBody records controller writes without integrating
type fakeBody struct {
	pos      mgl64.Vec3
	vel      mgl64.Vec3
	rot      mgl64.Quat
	angvel   mgl64.Vec3
	angWrite int
}

func (b *fakeBody) Position() mgl64.Vec3           { return b.pos }
func (b *fakeBody) LinearVelocity() mgl64.Vec3     { return b.vel }
func (b *fakeBody) Rotation() mgl64.Quat           { return b.rot }
func (b *fakeBody) SetLinearVelocity(v mgl64.Vec3) { b.vel = v }
func (b *fakeBody) SetRotation(q mgl64.Quat)       { b.rot = q }
func (b *fakeBody) SetAngularVelocity(w mgl64.Vec3) {
	b.angvel = w
	b.angWrite++
}

// newRig places a controller and a simulated body at the gp1 spawn
func newRig(heading float64, pos mgl64.Vec3) (*Controller, *physics.RigidBody, *physics.World) {
	body := physics.NewRigidBody(pos, vmath.YawQuat(heading))
	world := physics.NewWorld()
	world.AddBody(body)
	return NewController(heading), body, world
}

func step(c *Controller, body *physics.RigidBody, world *physics.World, in core.Input) {
	c.Update(dt, in, body)
	world.Step(dt)
}

func TestSmoothedSteerBoundsAndSnap(t *testing.T) {
	c := NewController(0)
	body := &fakeBody{rot: mgl64.QuatIdent()}

	for i := 0; i < 300; i++ {
		c.Update(dt, core.Input{Left: true}, body)
		if s := c.Steer(); s > 1 || s < -1 {
			t.Fatalf("tick %d: steer %f outside [-1, 1]", i, s)
		}
	}
	// A huge dt is clamped so the factor never exceeds one
	c.Update(10, core.Input{Right: true}, body)
	if s := c.Steer(); s < -1 || s > 1 {
		t.Fatalf("steer %f outside [-1, 1] after long frame", s)
	}

	for i := 0; i < 600; i++ {
		c.Update(dt, core.Input{}, body)
		s := c.Steer()
		if s != 0 && math.Abs(s) < parameter.SteerDeadzone {
			t.Fatalf("tick %d: residual steer %g not snapped", i, s)
		}
	}
	if c.Steer() != 0 {
		t.Errorf("Expected steer released to exactly 0, got %g", c.Steer())
	}
}

func TestAngularVelocityZeroedEveryTick(t *testing.T) {
	c := NewController(0)
	body := &fakeBody{rot: mgl64.QuatIdent(), vel: mgl64.Vec3{0, 0, 20}}

	inputs := []core.Input{{}, {Forward: true}, {Left: true}, {Backward: true, Right: true}}
	for i, in := range inputs {
		body.angvel = mgl64.Vec3{0, 5, 0}
		c.Update(dt, in, body)
		if body.angvel != (mgl64.Vec3{}) {
			t.Errorf("tick %d: Expected zero angular velocity, got %v", i, body.angvel)
		}
		if body.angWrite != i+1 {
			t.Errorf("tick %d: Expected one angular write per tick, got %d", i, body.angWrite)
		}
	}
}

func TestNilBodySkipsTick(t *testing.T) {
	c := NewController(1)
	c.Update(dt, core.Input{Left: true}, nil)
	if c.State() != (State{SteerAngle: 1}) {
		t.Errorf("Expected state untouched, got %+v", c.State())
	}

	var rb *physics.RigidBody
	c.Update(dt, core.Input{Forward: true, Left: true}, rb)
	if c.State() != (State{SteerAngle: 1}) {
		t.Errorf("Expected state untouched with nil rigid body, got %+v", c.State())
	}
}

func TestSpeedClamps(t *testing.T) {
	c := NewController(0)

	fast := &fakeBody{rot: mgl64.QuatIdent(), vel: mgl64.Vec3{30, 0, 200}}
	c.Update(dt, core.Input{Forward: true}, fast)
	if s := vmath.HorizontalSpeed(fast.vel); s > parameter.MaxSpeed+1e-9 {
		t.Errorf("Expected horizontal speed <= %f, got %f", parameter.MaxSpeed, s)
	}

	c.Reset(0)
	reversing := &fakeBody{rot: mgl64.QuatIdent(), vel: mgl64.Vec3{0, 0, -90}}
	c.Update(dt, core.Input{Backward: true}, reversing)
	fwd := vmath.DotXZ(vmath.Forward(reversing.rot), reversing.vel)
	if fwd < -parameter.ReverseMax-1e-9 {
		t.Errorf("Expected reverse speed capped at %f, got %f", parameter.ReverseMax, fwd)
	}
}

func TestReverseCeilingSustained(t *testing.T) {
	c, body, world := newRig(0, mgl64.Vec3{0, parameter.ColliderHalfY, 0})
	for i := 0; i < 5*60; i++ {
		step(c, body, world, core.Input{Backward: true})
		fwd := vmath.DotXZ(vmath.Forward(body.Rotation()), body.LinearVelocity())
		if fwd < -parameter.ReverseMax-1e-9 {
			t.Fatalf("tick %d: reverse speed %f beyond ceiling", i, fwd)
		}
	}
	fwd := vmath.DotXZ(vmath.Forward(body.Rotation()), body.LinearVelocity())
	if math.Abs(fwd+parameter.ReverseMax) > 1e-6 {
		t.Errorf("Expected reverse to settle on the ceiling, got %f", fwd)
	}
}

func TestIdleAtRestDoesNotDrift(t *testing.T) {
	start := mgl64.Vec3{12, parameter.ColliderHalfY, -7}
	c, body, world := newRig(0.4, start)

	for i := 0; i < 600; i++ {
		step(c, body, world, core.Input{})
	}

	if body.Position() != start {
		t.Errorf("Expected position %v unchanged, got %v", start, body.Position())
	}
	if c.State().SteerAngle != 0.4 {
		t.Errorf("Expected heading unchanged, got %f", c.State().SteerAngle)
	}
}

func TestHoldForwardFromGridSpawn(t *testing.T) {
	heading := -math.Pi / 2
	c, body, world := newRig(heading, mgl64.Vec3{30, parameter.SpawnHeight, 0})

	for i := 0; i < 2*60; i++ {
		step(c, body, world, core.Input{Forward: true})
	}

	speed := vmath.HorizontalSpeed(body.LinearVelocity())
	if speed <= 0 || speed > parameter.MaxSpeed {
		t.Errorf("Expected 0 < speed <= %f, got %f", parameter.MaxSpeed, speed)
	}
	if got := c.State().SteerAngle; math.Abs(got-heading) > 1e-9 {
		t.Errorf("Expected heading %f unchanged, got %f", heading, got)
	}
	if body.Position().X() >= 30 {
		t.Errorf("Expected car to travel toward -X, x=%f", body.Position().X())
	}
}

func TestHoldLeftFromRestDoesNotTurn(t *testing.T) {
	c, body, world := newRig(0, mgl64.Vec3{0, parameter.ColliderHalfY, 0})

	prev := 0.0
	for i := 0; i < 60; i++ {
		step(c, body, world, core.Input{Left: true})
		s := c.Steer()
		if s < prev {
			t.Fatalf("tick %d: steer not monotonic, %f after %f", i, s, prev)
		}
		prev = s
	}

	if s := c.Steer(); s < 0.999 || s > 1 {
		t.Errorf("Expected smoothed steer close to 1, got %f", s)
	}
	if c.State().SteerAngle != 0 {
		t.Errorf("Expected no heading change without speed, got %f", c.State().SteerAngle)
	}
}

func TestSteeringNeedsSpeed(t *testing.T) {
	c, body, world := newRig(0, mgl64.Vec3{0, parameter.ColliderHalfY, 0})

	turned := -1
	for i := 0; i < 120; i++ {
		step(c, body, world, core.Input{Forward: true, Left: true})
		if turned < 0 && c.State().SteerAngle != 0 {
			turned = i
			if c.Telemetry().Speed <= 0 {
				t.Errorf("Expected heading to change only once moving, speed %f", c.Telemetry().Speed)
			}
		}
	}
	if turned < 0 {
		t.Fatal("Expected heading to change while accelerating with left held")
	}
	if c.State().SteerAngle <= 0 {
		t.Errorf("Expected left steer to increase heading, got %f", c.State().SteerAngle)
	}
}

func TestSteeringInvertsInReverse(t *testing.T) {
	c := NewController(0)
	body := &fakeBody{rot: mgl64.QuatIdent(), vel: mgl64.Vec3{0, 0, -10}}

	for i := 0; i < 10; i++ {
		body.vel = mgl64.Vec3{0, 0, -10}
		c.Update(dt, core.Input{Left: true}, body)
	}
	if !c.Telemetry().GoingBackward {
		t.Fatal("Expected reverse to be detected")
	}
	if c.State().SteerAngle >= 0 {
		t.Errorf("Expected left in reverse to decrease heading, got %f", c.State().SteerAngle)
	}
}

func TestNoAutoCenterInReverse(t *testing.T) {
	c := NewController(0)
	// backing up with a sideways component, steering released
	body := &fakeBody{rot: mgl64.QuatIdent(), vel: mgl64.Vec3{3, 0, -10}}
	c.Update(dt, core.Input{}, body)
	if c.State().SteerAngle != 0 {
		t.Errorf("Expected heading untouched in reverse, got %f", c.State().SteerAngle)
	}
}

func TestAutoCenterConvergesMonotonically(t *testing.T) {
	heading := 0.0
	velAngle := 0.5
	c, body, world := newRig(heading, mgl64.Vec3{0, parameter.ColliderHalfY, 0})
	body.SetLinearVelocity(mgl64.Vec3{20 * math.Sin(velAngle), 0, 20 * math.Cos(velAngle)})

	prevDiff := math.Abs(vmath.AngleDiff(c.State().SteerAngle, velAngle))
	for i := 0; i < 60; i++ {
		v := body.LinearVelocity()
		target := math.Atan2(v.X(), v.Z())
		before := c.State().SteerAngle
		step(c, body, world, core.Input{})
		after := c.State().SteerAngle

		if d := vmath.AngleDiff(before, target); math.Abs(d) > 1e-9 && d*vmath.AngleDiff(after, target) < 0 {
			t.Fatalf("tick %d: heading overshot the velocity angle", i)
		}
		v = body.LinearVelocity()
		diff := math.Abs(vmath.AngleDiff(after, math.Atan2(v.X(), v.Z())))
		if diff > prevDiff+1e-12 {
			t.Fatalf("tick %d: diff grew from %g to %g", i, prevDiff, diff)
		}
		prevDiff = diff
	}
	if prevDiff > 1e-3 {
		t.Errorf("Expected heading to converge on velocity, residual %g", prevDiff)
	}
}

func TestAutoCenterTakesShortPath(t *testing.T) {
	heading := math.Pi - 0.1
	c := NewController(heading)
	velAngle := -math.Pi + 0.1
	body := &fakeBody{
		rot: vmath.YawQuat(heading),
		vel: mgl64.Vec3{10 * math.Sin(velAngle), 0, 10 * math.Cos(velAngle)},
	}

	c.Update(dt, core.Input{}, body)

	got := c.State().SteerAngle
	if got <= heading {
		t.Errorf("Expected heading to move forward across π, got %f from %f", got, heading)
	}
	if got-heading > 0.2 {
		t.Errorf("Expected no overshoot past the velocity angle, moved %f", got-heading)
	}
}

func TestBrakeBeforeReverse(t *testing.T) {
	c := NewController(0)
	body := &fakeBody{rot: mgl64.QuatIdent(), vel: mgl64.Vec3{0, 0, 20}}

	c.Update(dt, core.Input{Backward: true}, body)

	want := (20 - parameter.BrakeDecel*dt) * parameter.RollingFriction
	if got := body.vel.Z(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected braking to %f, got %f", want, got)
	}
}

func TestLateralGripDampsSlide(t *testing.T) {
	c := NewController(0)
	body := &fakeBody{rot: mgl64.QuatIdent(), vel: mgl64.Vec3{4, 0, 10}}

	c.Update(dt, core.Input{}, body)

	tel := c.Telemetry()
	if tel.Drifting {
		t.Error("Expected no drift below threshold")
	}
	right := vmath.Right(body.rot)
	lat := vmath.DotXZ(right, body.vel)
	if math.Abs(lat) >= math.Abs(tel.LateralSpeed)*(1-tel.Grip)+1e-9 {
		t.Errorf("Expected lateral %f damped by grip %f", lat, tel.Grip)
	}
}

func TestDriftReducesGrip(t *testing.T) {
	c := NewController(0)
	c.state.SmoothedSteer = 1
	body := &fakeBody{rot: mgl64.QuatIdent(), vel: mgl64.Vec3{20, 0, 40}}

	c.Update(dt, core.Input{Left: true}, body)

	tel := c.Telemetry()
	if !tel.Drifting {
		t.Fatal("Expected drift with high lateral speed and steer held")
	}
	speed := math.Hypot(20, 40)
	base := vmath.Lerp(parameter.GripLowSpeed, parameter.GripHighSpeed, math.Min(speed/parameter.GripSpeedBlend, 1))
	if math.Abs(tel.Grip-base*parameter.DriftGripFactor) > 1e-12 {
		t.Errorf("Expected grip %f, got %f", base*parameter.DriftGripFactor, tel.Grip)
	}
}
