package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/velikanov/astro-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages into the per-tick
// control vector. This centralizes key bindings and makes them
// testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToControl folds a key message into the control vector being
// built for the next tick. Returns true for a quit request.
func (km *KeyMapper) MapKeyToControl(msg tea.KeyMsg, ctrl *core.Control) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case "left", "a", "h":
		ctrl.AxisX = -1
	case "right", "d", "l":
		ctrl.AxisX = 1
	case " ", "up", "w":
		ctrl.Fire = true
	case "p", "esc":
		ctrl.Pause = true
	case "r":
		ctrl.Restart = true
	}
	return false
}
