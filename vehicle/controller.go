// Package vehicle implements the arcade car model: it turns the directional
// key snapshot into a target yaw orientation and linear velocity for a
// physics body, once per tick.
package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vmath"
)

// State is owned by a single Controller and mutated every tick
type State struct {
	SteerAngle    float64 // heading in radians, 0 along +Z
	SmoothedSteer float64 // low-pass filtered steer input in [-1, 1]
}

// Telemetry holds the values derived at the start of the last tick
type Telemetry struct {
	Speed         float64 // horizontal speed
	ForwardSpeed  float64 // along the previous heading
	LateralSpeed  float64 // along the right vector after throttle
	Grip          float64 // effective lateral grip applied
	GoingBackward bool
	Drifting      bool
}

// Controller is the per-vehicle integrator, not safe for concurrent use
type Controller struct {
	state     State
	telemetry Telemetry
}

// NewController creates a controller facing heading
func NewController(heading float64) *Controller {
	return &Controller{state: State{SteerAngle: heading}}
}

// Reset restores the initial heading and clears steering
func (c *Controller) Reset(heading float64) {
	c.state = State{SteerAngle: heading}
	c.telemetry = Telemetry{}
}

// State returns a copy of the controller state
func (c *Controller) State() State { return c.state }

// Telemetry returns the values derived during the last Update
func (c *Controller) Telemetry() Telemetry { return c.telemetry }

// Steer returns the smoothed steer input consumed by the HUD and wheel animation
func (c *Controller) Steer() float64 { return c.state.SmoothedSteer }

// Update runs one tick. Orientation, angular velocity and linear velocity are
// written together at the end; a missing body skips the tick.
func (c *Controller) Update(dt float64, in core.Input, body physics.Body) {
	if missing(body) || dt <= 0 {
		return
	}
	dt = math.Min(dt, parameter.MaxFrameDelta)

	linvel := body.LinearVelocity()
	speed := vmath.HorizontalSpeed(linvel)

	// Input smoothing
	steer := vmath.Approach(c.state.SmoothedSteer, in.SteerTarget(), parameter.SteerInputLerp*dt)
	steer = vmath.Clamp(vmath.SnapZero(steer, parameter.SteerDeadzone), -1, 1)
	c.state.SmoothedSteer = steer

	// Direction sense from the previous heading
	prevForward := vmath.Forward(vmath.YawQuat(c.state.SteerAngle))
	fwdSpeed := vmath.DotXZ(prevForward, linvel)
	goingBackward := fwdSpeed < -parameter.DirectionThreshold

	// Tighter turns at low speed, no turning in place, inverted in reverse
	steerRate := vmath.Lerp(parameter.SteerMaxLow, parameter.SteerMaxHigh, math.Min(speed/parameter.SteerSpeedBlend, 1))
	moveFactor := math.Min(speed/parameter.SteerMoveSpeed, 1)
	steerDir := 1.0
	if goingBackward {
		steerDir = -1
	}

	if math.Abs(steer) > parameter.SteerDeadzone {
		c.state.SteerAngle += steerRate * dt * steer * moveFactor * steerDir
	} else if speed > parameter.DirectionThreshold && !goingBackward {
		velAngle := math.Atan2(linvel.X(), linvel.Z())
		diff := vmath.AngleDiff(c.state.SteerAngle, velAngle)
		c.state.SteerAngle += diff * math.Min(parameter.SteerReturnSpeed*dt, 1)
	}

	rotation := vmath.YawQuat(c.state.SteerAngle)
	forward := vmath.Forward(rotation)
	right := vmath.Right(rotation)

	accel := c.throttle(in, speed, fwdSpeed)
	v := mgl64.Vec3{
		linvel.X() + forward.X()*accel*dt,
		linvel.Y(),
		linvel.Z() + forward.Z()*accel*dt,
	}

	// Lateral grip, lower at speed so the tail can step out
	grip := vmath.Lerp(parameter.GripLowSpeed, parameter.GripHighSpeed, math.Min(speed/parameter.GripSpeedBlend, 1))
	fwd := vmath.DotXZ(forward, v)
	lat := vmath.DotXZ(right, v)
	drifting := math.Abs(lat) > parameter.DriftThreshold && math.Abs(steer) > parameter.DriftSteerMin
	if drifting {
		grip *= parameter.DriftGripFactor
	}
	correctedLat := lat * (1 - grip)
	v[0] = forward.X()*fwd + right.X()*correctedLat
	v[2] = forward.Z()*fwd + right.Z()*correctedLat

	v = vmath.ScaleXZ(v, parameter.RollingFriction)
	v = clampSpeed(v, forward)

	c.telemetry = Telemetry{
		Speed:         speed,
		ForwardSpeed:  fwdSpeed,
		LateralSpeed:  lat,
		Grip:          grip,
		GoingBackward: goingBackward,
		Drifting:      drifting,
	}

	body.SetRotation(rotation)
	body.SetAngularVelocity(mgl64.Vec3{})
	body.SetLinearVelocity(v)
}

// throttle returns the longitudinal acceleration along forward
// Braking overrides throttle when both keys are held
func (c *Controller) throttle(in core.Input, speed, fwdSpeed float64) float64 {
	accel := 0.0
	if in.Forward {
		ratio := speed / parameter.MaxSpeed
		falloff := 1 - ratio*ratio*parameter.AccelFalloff
		accel = parameter.Acceleration * math.Max(falloff, parameter.AccelFloor)
	}
	if in.Backward {
		if fwdSpeed > parameter.DirectionThreshold {
			accel = -parameter.BrakeDecel
		} else {
			accel = -parameter.Acceleration * parameter.ReverseAccelFactor
		}
	}
	return accel
}

// clampSpeed caps horizontal speed at MaxSpeed and reverse speed at ReverseMax
func clampSpeed(v, forward mgl64.Vec3) mgl64.Vec3 {
	if horiz := vmath.HorizontalSpeed(v); horiz > parameter.MaxSpeed {
		v = vmath.ScaleXZ(v, parameter.MaxSpeed/horiz)
	}
	if newFwd := vmath.DotXZ(forward, v); newFwd < -parameter.ReverseMax {
		v = vmath.ScaleXZ(v, parameter.ReverseMax/math.Abs(newFwd))
	}
	return v
}

// missing reports a nil body, including a nil *RigidBody held in the interface
func missing(body physics.Body) bool {
	if body == nil {
		return true
	}
	rb, ok := body.(*physics.RigidBody)
	return ok && rb == nil
}
