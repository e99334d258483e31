package model

import (
	"iter"
	"slices"
)

// StudyGroup is an ordered, mutable collection of students. The order is
// insertion order until a sort reorders it in place.
type StudyGroup struct {
	name     string
	students []Student
}

// NewStudyGroup creates an empty study group. The name is a display label only.
func NewStudyGroup(name string) *StudyGroup {
	return &StudyGroup{name: name}
}

// Name returns the group's display label.
func (g *StudyGroup) Name() string { return g.name }

// Len returns the number of students currently in the group.
func (g *StudyGroup) Len() int { return len(g.students) }

// Add appends a student to the end of the group.
func (g *StudyGroup) Add(student Student) {
	g.students = append(g.students, student)
}

// RemoveByFullName removes every student whose first and last name match,
// keeping the relative order of the rest. It returns how many were removed.
func (g *StudyGroup) RemoveByFullName(firstName, lastName string) int {
	before := len(g.students)
	g.students = slices.DeleteFunc(g.students, func(s Student) bool {
		return s.HasFullName(firstName, lastName)
	})
	return before - len(g.students)
}

// SortStable reorders the group in place. Students that compare equal keep
// their relative order.
func (g *StudyGroup) SortStable(order Ordering[Student]) {
	slices.SortStableFunc(g.students, order)
}

// Students returns a copy of the group's current contents.
func (g *StudyGroup) Students() []Student {
	return slices.Clone(g.students)
}

// All yields the students in their current order. Mutating the group while
// ranging over it is not supported; use Iterator for removal during a walk.
func (g *StudyGroup) All() iter.Seq[Student] {
	return func(yield func(Student) bool) {
		for _, s := range g.students {
			if !yield(s) {
				return
			}
		}
	}
}

// Iterator returns a cursor positioned before the first student. The cursor
// reads and mutates the live group, not a snapshot.
func (g *StudyGroup) Iterator() *StudyGroupIterator {
	return &StudyGroupIterator{group: g}
}

func (g *StudyGroup) removeAt(i int) {
	g.students = slices.Delete(g.students, i, i+1)
}
