package colors

// Matrix returns the green-on-black scheme of the original web page
func Matrix() *ColorScheme {
	return &ColorScheme{
		Preset: "matrix",

		Accent: "#00FF00",

		Title:     "#00FF00",
		Subtle:    "#008700",
		Normal:    "#00FF00",
		Completed: "#005F00",

		SelectedBg:  "#003300",
		InputBorder: "#00FF00",

		TagNone:            "#00AF00",
		TagUrgentImportant: "#AFFF00",
		TagImportant:       "#5FFF00",
		TagUrgent:          "#00FF5F",
		TagLowPriority:     "#00875F",

		InfoFg:  "#00FF00",
		ErrorFg: "#FF5F5F",
	}
}
