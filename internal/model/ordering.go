package model

import "strings"

// Ordering is a total order over T. It returns a negative number when a sorts
// before b, zero when they are equal, and a positive number otherwise.
type Ordering[T any] func(a, b T) int

// Reverse returns the descending view of o.
func (o Ordering[T]) Reverse() Ordering[T] {
	return func(a, b T) int { return o(b, a) }
}

// ByID orders students ascending by ID.
var ByID Ordering[Student] = Student.Compare

// ByFullName orders students by last name, then first name, using byte-wise
// comparison.
var ByFullName Ordering[Student] = func(a, b Student) int {
	if c := strings.Compare(a.lastName, b.lastName); c != 0 {
		return c
	}
	return strings.Compare(a.firstName, b.firstName)
}

// ByGroupCount orders streams ascending by their current number of groups.
var ByGroupCount Ordering[*Stream] = func(a, b *Stream) int {
	return a.GroupCount() - b.GroupCount()
}
