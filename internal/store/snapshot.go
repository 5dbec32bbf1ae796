package store

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/thenoetrevino/tagdo/internal/models"
	"github.com/thenoetrevino/tagdo/internal/tags"
)

// ErrMalformed indicates a persisted snapshot that cannot be adopted
var ErrMalformed = errors.New("malformed task snapshot")

// MaxID is the largest task id, 2^53-1, so ids survive any JSON reader that
// decodes numbers as doubles
const MaxID int64 = 1<<53 - 1

// snapshotSchema describes the persisted layout: an array of task objects.
// The tag enum is filled in from the tag set when the schema is compiled.
const snapshotSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "text", "completed", "tag"],
		"properties": {
			"id": {"type": "integer", "minimum": 0, "maximum": %d},
			"text": {"type": "string", "minLength": 1},
			"completed": {"type": "boolean"},
			"tag": {"type": "string", "enum": %s}
		}
	}
}`

var compiledSchema = mustCompileSnapshotSchema()

func mustCompileSnapshotSchema() *jsonschema.Schema {
	enum, err := json.Marshal(tags.Labels())
	if err != nil {
		panic(err)
	}
	return jsonschema.MustCompileString("tagdo-snapshot.schema.json", fmt.Sprintf(snapshotSchema, MaxID, enum))
}

// EncodeSnapshot serializes tasks in the persisted layout. A nil list
// encodes as an empty array.
func EncodeSnapshot(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot parses and validates a persisted snapshot. Any structural
// problem, unknown tag, or duplicate id yields an error wrapping ErrMalformed.
func DecodeSnapshot(raw string) ([]models.Task, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	seen := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrMalformed, t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	return tasks, nil
}
