package models

// Task represents a single entry in the to-do list.
// The JSON field names are the persisted snapshot layout and must not change.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Tag       string `json:"tag"`
}

// GetID returns the task identifier (used by quiet CLI output)
func (t Task) GetID() int64 {
	return t.ID
}

// TaskStats summarizes the current list for status lines and `tagdo list`
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// CountTasks computes the stats for a list of tasks
func CountTasks(tasks []Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
