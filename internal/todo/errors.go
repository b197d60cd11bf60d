package todo

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Store.Add for text that is blank once trimmed.
// InputBuffer.Submit swallows it: a blank submission is simply ignored.
var ErrEmptyInput = errors.New("empty input")

// DanglingReferenceError means a task was handed to the core that the store
// does not own (already removed, or never added). Normal flows never produce it.
type DanglingReferenceError struct {
	Op string
	ID string
}

func (e DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s: task %s is not in the list", e.Op, e.ID)
}

func errDangling(op string, t *Task) error {
	id := "<nil>"
	if t != nil {
		id = t.id
	}
	return DanglingReferenceError{Op: op, ID: id}
}
