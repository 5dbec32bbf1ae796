package models

// ============================================================================
// STORAGE CONSTANTS
// ============================================================================

// TodosKey is the session storage key holding the serialized task list
const TodosKey = "todos"

// ============================================================================
// TAG CONSTANTS
// ============================================================================

// Tag labels in cycling order. The first entry is the default for new tasks.
const (
	TagNone            = "NONE"
	TagUrgentImportant = "URGENT & IMPORTANT"
	TagImportant       = "IMPORTANT"
	TagUrgent          = "URGENT"
	TagLowPriority     = "Low Priority..."
)
