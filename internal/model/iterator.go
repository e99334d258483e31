package model

import "fmt"

// StudyGroupIterator is a cursor over a StudyGroup that can remove the element
// it most recently returned.
//
// Invariant: 0 <= index <= group.Len() as long as the group is only mutated
// through this cursor.
type StudyGroupIterator struct {
	group     *StudyGroup
	index     int
	canRemove bool
}

// HasNext reports whether Next will return another student.
func (it *StudyGroupIterator) HasNext() bool {
	return it.index < it.group.Len()
}

// Next returns the student at the cursor and advances past it.
func (it *StudyGroupIterator) Next() (Student, error) {
	if !it.HasNext() {
		return Student{}, fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, it.index, it.group.Len())
	}
	s := it.group.students[it.index]
	it.index++
	it.canRemove = true
	return s, nil
}

// RemoveCurrent removes the student most recently returned by Next and moves
// the cursor back by one, so the following Next yields the student that came
// after the removed one.
func (it *StudyGroupIterator) RemoveCurrent() error {
	if !it.canRemove {
		return ErrIllegalState
	}
	pos := it.index - 1
	if pos >= it.group.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, pos, it.group.Len())
	}
	it.group.removeAt(pos)
	it.index = pos
	it.canRemove = false
	return nil
}
