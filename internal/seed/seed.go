// Package seed builds study groups from fixture entries, validating each entry
// before it becomes a model.Student.
package seed

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stemsi/roster/internal/model"
	"github.com/stemsi/roster/internal/validator"
)

// Entry is one fixture row. Duplicate IDs across entries are allowed.
type Entry struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	StudentID int    `json:"student_id" validate:"min=0"`
}

// ValidationError reports which fields of which entry failed validation.
type ValidationError struct {
	Index  int
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("seed entry %d: %s", e.Index, strings.Join(parts, "; "))
}

// DefaultRoster returns the three demo students in insertion order.
func DefaultRoster() []Entry {
	return []Entry{
		{FirstName: "John", LastName: "Doe", StudentID: 1},
		{FirstName: "Jane", LastName: "Doe", StudentID: 2},
		{FirstName: "Jim", LastName: "Beam", StudentID: 3},
	}
}

// BuildGroup validates every entry, then adds them to a new group in order.
// Nothing is built if any entry is invalid.
func BuildGroup(name string, entries []Entry) (*model.StudyGroup, error) {
	for i, e := range entries {
		if fields := validator.Struct(e); fields != nil {
			return nil, &ValidationError{Index: i, Fields: fields}
		}
	}

	group := model.NewStudyGroup(name)
	for _, e := range entries {
		group.Add(model.NewStudent(e.FirstName, e.LastName, e.StudentID))
	}
	return group, nil
}
