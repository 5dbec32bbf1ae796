package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "matrix")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the cursor, title, focused input)
	Accent string `yaml:"accent"`

	// Text colors
	Title     string `yaml:"title"`
	Subtle    string `yaml:"subtle"` // Muted/placeholder text
	Normal    string `yaml:"normal"`
	Completed string `yaml:"completed"` // Struck-through finished tasks

	// UI element colors
	SelectedBg  string `yaml:"selected_bg"`
	InputBorder string `yaml:"input_border"`

	// Tag chip colors, one per label
	TagNone            string `yaml:"tag_none"`
	TagUrgentImportant string `yaml:"tag_urgent_important"`
	TagImportant       string `yaml:"tag_important"`
	TagUrgent          string `yaml:"tag_urgent"`
	TagLowPriority     string `yaml:"tag_low_priority"`

	// Notification colors
	InfoFg  string `yaml:"info_fg"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "matrix":
		return Matrix()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Completed, preset.Completed)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.InputBorder, preset.InputBorder)
	fill(&c.TagNone, preset.TagNone)
	fill(&c.TagUrgentImportant, preset.TagUrgentImportant)
	fill(&c.TagImportant, preset.TagImportant)
	fill(&c.TagUrgent, preset.TagUrgent)
	fill(&c.TagLowPriority, preset.TagLowPriority)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Completed, other.Completed)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.InputBorder, other.InputBorder)
	merge(&c.TagNone, other.TagNone)
	merge(&c.TagUrgentImportant, other.TagUrgentImportant)
	merge(&c.TagImportant, other.TagImportant)
	merge(&c.TagUrgent, other.TagUrgent)
	merge(&c.TagLowPriority, other.TagLowPriority)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.ErrorFg, other.ErrorFg)
}

// TagColor returns the chip color for a tag label, falling back to TagNone
func (c *ColorScheme) TagColor(label string) string {
	switch label {
	case "URGENT & IMPORTANT":
		return c.TagUrgentImportant
	case "IMPORTANT":
		return c.TagImportant
	case "URGENT":
		return c.TagUrgent
	case "Low Priority...":
		return c.TagLowPriority
	default:
		return c.TagNone
	}
}
