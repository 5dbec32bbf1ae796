package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:     "#FFFFFF",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		Completed: "#585858",

		SelectedBg:  "#3A3A3A",
		InputBorder: "#FFFFFF",

		TagNone:            "#808080",
		TagUrgentImportant: "#FFFFFF",
		TagImportant:       "#D0D0D0",
		TagUrgent:          "#BCBCBC",
		TagLowPriority:     "#808080",

		InfoFg:  "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
