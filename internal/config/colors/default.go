package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Text
		Title:     "#D75FD7",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		Completed: "#6C6C6C",

		// UI elements
		SelectedBg:  "#3A3A3A",
		InputBorder: "#5F87D7",

		// Tags
		TagNone:            "#808080",
		TagUrgentImportant: "#EF4444",
		TagImportant:       "#F97316",
		TagUrgent:          "#EAB308",
		TagLowPriority:     "#3B82F6",

		// Notifications
		InfoFg:  "#00AFFF",
		ErrorFg: "#FF0000",
	}
}
