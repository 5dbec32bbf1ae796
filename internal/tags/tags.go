// Package tags holds the fixed, ordered tag label set and the cycling rules
// applied to it.
package tags

import (
	"strings"

	"github.com/thenoetrevino/tagdo/internal/models"
)

var labels = []string{
	models.TagNone,
	models.TagUrgentImportant,
	models.TagImportant,
	models.TagUrgent,
	models.TagLowPriority,
}

// Labels returns a copy of the tag labels in cycling order
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// Default returns the label given to tasks created without a tag
func Default() string {
	return labels[0]
}

// Index returns the position of label in the sequence, or -1
func Index(label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}

// Valid reports whether label is a member of the tag set
func Valid(label string) bool {
	return Index(label) >= 0
}

// Next returns the label following current, wrapping from the last label to
// the first. Unknown labels advance to the first label.
func Next(current string) string {
	i := Index(current)
	if i < 0 {
		return labels[0]
	}
	return labels[(i+1)%len(labels)]
}

// Normalize maps an empty or unknown label to the default label
func Normalize(label string) string {
	if Valid(label) {
		return label
	}
	return Default()
}

// Parse resolves user input to a label. Matching is case-insensitive and
// ignores surrounding whitespace, so "urgent" resolves to "URGENT".
func Parse(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Default(), nil
	}
	for _, l := range labels {
		if strings.EqualFold(l, trimmed) {
			return l, nil
		}
	}
	return "", models.ErrUnknownTag
}
