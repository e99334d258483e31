package model

import (
	"cmp"
	"fmt"
)

// Student is an immutable roster entry. Two students with identical fields
// are still separate entries of a study group.
type Student struct {
	firstName string
	lastName  string
	id        int
}

// NewStudent creates a Student. It performs no validation.
func NewStudent(firstName, lastName string, id int) Student {
	return Student{firstName: firstName, lastName: lastName, id: id}
}

// FirstName returns the student's first name.
func (s Student) FirstName() string { return s.firstName }

// LastName returns the student's last name.
func (s Student) LastName() string { return s.lastName }

// ID returns the student identifier.
func (s Student) ID() int { return s.id }

// HasFullName reports whether both names match exactly (case-sensitive).
func (s Student) HasFullName(firstName, lastName string) bool {
	return s.firstName == firstName && s.lastName == lastName
}

// Compare is the natural ordering of students: ascending by ID.
func (s Student) Compare(other Student) int {
	return cmp.Compare(s.id, other.id)
}

// String renders the student as "<first> <last> (ID: <id>)".
func (s Student) String() string {
	return fmt.Sprintf("%s %s (ID: %d)", s.firstName, s.lastName, s.id)
}
