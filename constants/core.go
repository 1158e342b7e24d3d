package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SceneTransitionDuration is how long a scene transition takes before the next scene is presented
	SceneTransitionDuration = 1 * time.Second
)

// ECS & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System Execution Priorities (lower runs first)
// Order mirrors the frame callback: game over check, tap/contact handling,
// invader movement and fire, HUD, then the physics step of the host
const (
	PriorityGameOver   = 5
	PriorityShipInput  = 10
	PriorityShipFire   = 15
	PriorityContact    = 20
	PriorityMovement   = 30
	PriorityInvaderAI  = 40
	PriorityHUD        = 50
	PriorityPhysics    = 90
	PriorityDiagnostic = 99
)
