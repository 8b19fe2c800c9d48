package parameter

// Vehicle longitudinal model, units are world units and seconds
const (
	Acceleration    = 80.0
	BrakeDecel      = 60.0
	MaxSpeed        = 110.0
	ReverseMax      = 40.0
	RollingFriction = 0.985
	VehicleMass     = 2.0

	// AccelFalloff scales (speed/MaxSpeed)^2 off the throttle near top speed
	AccelFalloff = 0.6
	// AccelFloor is the lowest fraction of Acceleration still applied at top speed
	AccelFloor = 0.3
	// ReverseAccelFactor scales Acceleration when backing up
	ReverseAccelFactor = 0.5
)

// Steering
const (
	SteerMaxLow      = 3.6 // rad/s at low speed, agile
	SteerMaxHigh     = 1.4 // rad/s at high speed, stable
	SteerSpeedBlend  = 30.0
	SteerInputLerp   = 10.0
	SteerReturnSpeed = 4.0

	// SteerDeadzone snaps the smoothed input to zero and gates heading updates
	SteerDeadzone = 0.01
	// SteerMoveSpeed is the speed at which steering reaches full authority
	SteerMoveSpeed = 3.0
	// DirectionThreshold separates rolling forward/backward from standing still
	DirectionThreshold = 0.5
)

// Lateral grip
const (
	GripLowSpeed   = 0.97
	GripHighSpeed  = 0.82
	GripSpeedBlend = 50.0
	DriftThreshold = 15.0

	// DriftSteerMin is the smoothed steer magnitude needed to hold a slide
	DriftSteerMin = 0.3
	// DriftGripFactor reduces grip while sliding with steer applied
	DriftGripFactor = 0.85
)

// Rigid body stand-in
const (
	Gravity = -9.81

	// Collider half extents (x, y, z) of the car box
	ColliderHalfX = 0.6
	ColliderHalfY = 0.25
	ColliderHalfZ = 1.2

	// CarRadius approximates the box footprint for wall contacts
	CarRadius = 1.2

	// WallRestitution matches the car body restitution
	WallRestitution = 0.15
	// WallFriction damps the tangential velocity on wall contact
	WallFriction = 0.9
	// WallGap is the clearance between the road edge and the wall face
	WallGap = 0.3
)
