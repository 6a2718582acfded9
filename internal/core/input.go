package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor / slide tile up
	ActionDown           // S, Down arrow - move cursor / slide tile down
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter, Space - start, pick the cell under the cursor, submit
	ActionSelect         // Pick an explicit cell (Input.Cell), e.g. from a mouse click
	ActionRune           // Typed character (Input.Rune), e.g. a digit
	ActionErase          // Backspace - delete the last typed character
	ActionSeen           // Y - verbal memory "seen"
	ActionNew            // N - verbal memory "new"
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after the round finished
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionSelect:
		return "Select"
	case ActionRune:
		return "Rune"
	case ActionErase:
		return "Erase"
	case ActionSeen:
		return "Seen"
	case ActionNew:
		return "New"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection returns true for the four cursor actions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// Input is a single player action together with its payload.
type Input struct {
	Action Action
	Cell   int  // Cell index for ActionSelect
	Rune   rune // Character for ActionRune
}

// Press creates an input carrying only an action.
func Press(a Action) Input {
	return Input{Action: a}
}

// Select creates an input picking an explicit cell.
func Select(cell int) Input {
	return Input{Action: ActionSelect, Cell: cell}
}

// Type creates an input for a typed character.
func Type(r rune) Input {
	return Input{Action: ActionRune, Rune: r}
}
