package config

// KeyMappings defines all configurable key bindings of the TUI list view.
// Keys are bubbletea key strings ("a", "K", "ctrl+c", " ", "tab", "esc").
type KeyMappings struct {
	// Tasks
	FocusInput     string `yaml:"focus_input"`
	ToggleComplete string `yaml:"toggle_complete"`
	CycleTag       string `yaml:"cycle_tag"`
	DeleteTask     string `yaml:"delete_task"`
	ClearCompleted string `yaml:"clear_completed"`
	MoveTaskUp     string `yaml:"move_task_up"`
	MoveTaskDown   string `yaml:"move_task_down"`

	// Input
	CyclePendingTag string `yaml:"cycle_pending_tag"`
	FocusList       string `yaml:"focus_list"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		FocusInput:     "a",
		ToggleComplete: " ",
		CycleTag:       "t",
		DeleteTask:     "d",
		ClearCompleted: "D",
		MoveTaskUp:     "K",
		MoveTaskDown:   "J",

		// Input
		CyclePendingTag: "tab",
		FocusList:       "esc",

		// Navigation
		PrevTask: "k",
		NextTask: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.FocusInput, defaults.FocusInput)
	fill(&k.ToggleComplete, defaults.ToggleComplete)
	fill(&k.CycleTag, defaults.CycleTag)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ClearCompleted, defaults.ClearCompleted)
	fill(&k.MoveTaskUp, defaults.MoveTaskUp)
	fill(&k.MoveTaskDown, defaults.MoveTaskDown)
	fill(&k.CyclePendingTag, defaults.CyclePendingTag)
	fill(&k.FocusList, defaults.FocusList)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
