package service

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/roster/internal/model"
	"github.com/stretchr/testify/assert"
)

func newGroup() *model.StudyGroup {
	g := model.NewStudyGroup("demo")
	g.Add(model.NewStudent("John", "Doe", 1))
	g.Add(model.NewStudent("Jane", "Doe", 2))
	g.Add(model.NewStudent("Jim", "Beam", 3))
	return g
}

func render(g *model.StudyGroup) []string {
	var out []string
	for s := range g.All() {
		out = append(out, s.String())
	}
	return out
}

func TestStudyGroupService_Sorts(t *testing.T) {
	svc := NewStudyGroupService(zerolog.Nop())
	g := newGroup()

	svc.SortStudentsByID(g)
	assert.Equal(t, []string{"John Doe (ID: 1)", "Jane Doe (ID: 2)", "Jim Beam (ID: 3)"}, render(g))

	svc.SortStudentsByFullName(g)
	assert.Equal(t, []string{"Jim Beam (ID: 3)", "Jane Doe (ID: 2)", "John Doe (ID: 1)"}, render(g))

	svc.SortStudentsByID(g)
	assert.Equal(t, []string{"John Doe (ID: 1)", "Jane Doe (ID: 2)", "Jim Beam (ID: 3)"}, render(g))
}

func TestStudyGroupService_RemoveStudentByFullName(t *testing.T) {
	var buf bytes.Buffer
	svc := NewStudyGroupService(zerolog.New(&buf).Level(zerolog.DebugLevel))
	g := newGroup()
	svc.SortStudentsByFullName(g)

	svc.RemoveStudentByFullName(g, "Jane", "Doe")

	assert.Equal(t, []string{"Jim Beam (ID: 3)", "John Doe (ID: 1)"}, render(g))
	assert.Contains(t, buf.String(), `"component":"study_group_service"`)
	assert.Contains(t, buf.String(), `"removed":1`)
}

func TestStudyGroupService_EmptyGroup(t *testing.T) {
	svc := NewStudyGroupService(zerolog.Nop())
	g := model.NewStudyGroup("empty")

	assert.NotPanics(t, func() {
		svc.SortStudentsByID(g)
		svc.SortStudentsByFullName(g)
		svc.RemoveStudentByFullName(g, "Jane", "Doe")
	})
	assert.Zero(t, g.Len())
}
