package client

import (
	"bytes"
	"encoding/json"

	"TaskBoardService/models"
)

// looksLikeTask reports whether a decoded JSON value carries the fields of
// a wire task. Owner ids may be null; description and due_date may be
// missing or null.
func looksLikeTask(v any) bool {
	o, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := o["id"].(json.Number); !ok {
		return false
	}
	for _, key := range []string{"user_id", "category_id"} {
		if x, present := o[key]; present && x != nil {
			if _, ok := x.(json.Number); !ok {
				return false
			}
		}
	}
	for _, key := range []string{"title", "priority", "status", "created_at"} {
		if _, ok := o[key].(string); !ok {
			return false
		}
	}
	for _, key := range []string{"description", "due_date"} {
		if x, present := o[key]; present && x != nil {
			if _, ok := x.(string); !ok {
				return false
			}
		}
	}
	return true
}

func decodeAny(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	err := dec.Decode(&v)
	return v, err
}

// decodeTask decodes one wire task, or fails with ErrInvalidTask.
func decodeTask(raw []byte) (models.Task, error) {
	var t models.Task
	v, err := decodeAny(raw)
	if err != nil || !looksLikeTask(v) {
		return t, ErrInvalidTask
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return t, ErrInvalidTask
	}
	return t, nil
}

// decodeTasks decodes a task list. Entries that are not tasks are dropped,
// and a body that is not an array yields an empty list.
func decodeTasks(raw []byte) []models.Task {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []models.Task{}
	}
	tasks := make([]models.Task, 0, len(entries))
	for _, entry := range entries {
		t, err := decodeTask(entry)
		if err != nil {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}
