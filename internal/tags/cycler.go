package tags

// SelectorPolicy decides what the pending tag becomes after a task is added
type SelectorPolicy int

const (
	// KeepSelection leaves the just-used tag selected for the next task
	KeepSelection SelectorPolicy = iota
	// ResetSelection returns the selector to the default tag
	ResetSelection
)

// Cycler tracks the tag that the next new task will receive.
// It is not safe for concurrent use.
type Cycler struct {
	selected string
	policy   SelectorPolicy
}

// NewCycler creates a cycler with the default label selected
func NewCycler(policy SelectorPolicy) *Cycler {
	return &Cycler{
		selected: Default(),
		policy:   policy,
	}
}

// Selected returns the pending tag for new tasks
func (c *Cycler) Selected() string {
	return c.selected
}

// Select sets the pending tag. Unknown labels select the default.
func (c *Cycler) Select(label string) {
	c.selected = Normalize(label)
}

// CycleSelected advances the pending tag and returns it
func (c *Cycler) CycleSelected() string {
	c.selected = Next(c.selected)
	return c.selected
}

// AfterAdd applies the selector policy once a task has been added
func (c *Cycler) AfterAdd() {
	if c.policy == ResetSelection {
		c.selected = Default()
	}
}
