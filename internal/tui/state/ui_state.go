package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	InputMode Mode = iota // Typing a new task in the text input
	ListMode              // Navigating and editing the task list
	HelpMode              // Displaying help screen
)

// UIState manages the user interface state.
// This includes the list cursor, terminal dimensions, and the current
// interaction mode.
type UIState struct {
	// cursor is the index of the selected task in the list
	cursor int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// returnMode is the mode to go back to when help is dismissed
	returnMode Mode
}

// NewUIState creates a UIState with the text input focused
func NewUIState() *UIState {
	return &UIState{mode: InputMode}
}

// Cursor returns the index of the selected task
func (s *UIState) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor to i, clamped to a list of n tasks
func (s *UIState) SetCursor(i, n int) {
	s.cursor = i
	s.ClampCursor(n)
}

// MoveCursor moves the cursor by delta, staying inside a list of n tasks
func (s *UIState) MoveCursor(delta, n int) {
	s.SetCursor(s.cursor+delta, n)
}

// ClampCursor keeps the cursor valid after the list shrank or grew
func (s *UIState) ClampCursor(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ShowHelp opens the help screen, remembering the mode to return to
func (s *UIState) ShowHelp() {
	if s.mode == HelpMode {
		return
	}
	s.returnMode = s.mode
	s.mode = HelpMode
}

// HideHelp closes the help screen
func (s *UIState) HideHelp() {
	if s.mode != HelpMode {
		return
	}
	s.mode = s.returnMode
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetDimensions records the terminal size
func (s *UIState) SetDimensions(width, height int) {
	s.width = width
	s.height = height
}

// VisibleRange returns the [start, end) window of tasks whose rendered
// heights fit in rows lines. The cursor row is always included, with up to
// half the space spent on rows above it.
func (s *UIState) VisibleRange(heights []int, rows int) (int, int) {
	n := len(heights)
	total := 0
	for _, h := range heights {
		total += h
	}
	if rows <= 0 || total <= rows {
		return 0, n
	}

	cur := s.cursor
	if cur >= n {
		cur = n - 1
	}
	if cur < 0 {
		cur = 0
	}

	start, end := cur, cur+1
	used := heights[cur]
	for start > 0 && used+heights[start-1] <= rows/2 {
		start--
		used += heights[start]
	}
	for end < n && used+heights[end] <= rows {
		used += heights[end]
		end++
	}
	// Near the bottom, fill leftover space upward
	for start > 0 && used+heights[start-1] <= rows {
		start--
		used += heights[start]
	}
	return start, end
}
