package service

import (
	"github.com/rs/zerolog"
	"github.com/stemsi/roster/internal/model"
)

// StudyGroupService sorts and prunes study groups in place.
type StudyGroupService struct {
	log zerolog.Logger
}

// NewStudyGroupService creates a new StudyGroupService.
func NewStudyGroupService(log zerolog.Logger) *StudyGroupService {
	return &StudyGroupService{
		log: log.With().Str("component", "study_group_service").Logger(),
	}
}

// RemoveStudentByFullName removes every student in the group with the given
// first and last name. Removing an absent name is a no-op.
func (s *StudyGroupService) RemoveStudentByFullName(group *model.StudyGroup, firstName, lastName string) {
	removed := group.RemoveByFullName(firstName, lastName)
	s.log.Debug().
		Str("group", group.Name()).
		Str("first_name", firstName).
		Str("last_name", lastName).
		Int("removed", removed).
		Msg("removed students by full name")
}

// SortStudentsByID stable-sorts the group ascending by student ID.
func (s *StudyGroupService) SortStudentsByID(group *model.StudyGroup) {
	group.SortStable(model.ByID)
	s.log.Debug().Str("group", group.Name()).Int("size", group.Len()).Msg("sorted students by id")
}

// SortStudentsByFullName stable-sorts the group by last name, then first name.
func (s *StudyGroupService) SortStudentsByFullName(group *model.StudyGroup) {
	group.SortStable(model.ByFullName)
	s.log.Debug().Str("group", group.Name()).Int("size", group.Len()).Msg("sorted students by full name")
}
