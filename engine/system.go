package engine

// System is an interface that all systems must implement
type System interface {
	// Update runs once per frame, reading the frame time from the GameContext
	Update()

	// Priority orders systems; lower values run first
	Priority() int
}
