package core

// Control is the per-tick input vector sampled by the platform and
// consumed by games. It is rebuilt every tick from whatever keys were
// pressed since the previous one; games never see raw key events.
type Control struct {
	// AxisX is the horizontal steering intent: -1 (left), 0, or 1 (right).
	AxisX int

	// Fire is the primary action (shoot).
	Fire bool

	// Pause toggles the pause state.
	Pause bool

	// Restart requests a session restart after game over.
	Restart bool
}

// Clear resets the control vector for the next tick.
func (c *Control) Clear() {
	*c = Control{}
}
