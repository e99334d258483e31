package model

import "iter"

// Stream is an ordered collection of study groups. Groups are held by
// reference and may belong to more than one stream.
type Stream struct {
	name   string
	groups []*StudyGroup
}

// NewStream creates an empty stream. The name is a display label only.
func NewStream(name string) *Stream {
	return &Stream{name: name}
}

// Name returns the stream's display label.
func (s *Stream) Name() string { return s.name }

// AddGroup appends a study group to the stream.
func (s *Stream) AddGroup(group *StudyGroup) {
	s.groups = append(s.groups, group)
}

// GroupCount returns the number of groups currently in the stream.
func (s *Stream) GroupCount() int { return len(s.groups) }

// Groups yields the stream's groups in insertion order.
func (s *Stream) Groups() iter.Seq[*StudyGroup] {
	return func(yield func(*StudyGroup) bool) {
		for _, g := range s.groups {
			if !yield(g) {
				return
			}
		}
	}
}
