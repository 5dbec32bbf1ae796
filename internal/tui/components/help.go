package components

import (
	"strings"

	"github.com/thenoetrevino/tagdo/internal/config"
)

type helpEntry struct {
	key  string
	desc string
}

// keyName renders a binding for display
func keyName(k string) string {
	switch k {
	case " ":
		return "space"
	case "":
		return "(unbound)"
	}
	return k
}

// RenderHelp renders the key reference for the configured bindings
func RenderHelp(km config.KeyMappings, s Styles) string {
	sections := []struct {
		title   string
		entries []helpEntry
	}{
		{"Input", []helpEntry{
			{"enter", "add task with the pending tag"},
			{keyName(km.CyclePendingTag), "cycle the pending tag"},
			{keyName(km.FocusList), "go to the list"},
		}},
		{"List", []helpEntry{
			{keyName(km.NextTask) + "/" + keyName(km.PrevTask), "move cursor"},
			{keyName(km.ToggleComplete), "toggle completed"},
			{keyName(km.CycleTag) + "/enter", "cycle tag"},
			{keyName(km.DeleteTask), "delete task"},
			{keyName(km.ClearCompleted), "delete completed tasks"},
			{keyName(km.MoveTaskDown) + "/" + keyName(km.MoveTaskUp), "move task down/up"},
			{keyName(km.FocusInput) + "/i", "new task"},
		}},
		{"Other", []helpEntry{
			{keyName(km.ShowHelp), "toggle help"},
			{keyName(km.Quit) + "/ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Keyboard shortcuts") + "\n")
	for _, sec := range sections {
		b.WriteString("\n" + s.HelpHeader.Render(sec.title) + "\n")
		for _, e := range sec.entries {
			b.WriteString("  " + s.HelpKey.Render(padRight(e.key, 12)) + " " + s.Normal.Render(e.desc) + "\n")
		}
	}
	b.WriteString("\n" + s.Subtle.Render("press any key to close"))
	return b.String()
}

func padRight(str string, width int) string {
	if len(str) >= width {
		return str
	}
	return str + strings.Repeat(" ", width-len(str))
}
