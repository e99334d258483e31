package handler

import (
	"github.com/stemsi/roster/internal/model"
	"github.com/stemsi/roster/internal/service"
)

// Controller is the caller-facing entry point for study group operations.
// Every method forwards to StudyGroupService unchanged.
type Controller struct {
	service *service.StudyGroupService
}

// NewController creates a new Controller.
func NewController(service *service.StudyGroupService) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RemoveStudentByFullName(group *model.StudyGroup, firstName, lastName string) {
	c.service.RemoveStudentByFullName(group, firstName, lastName)
}

func (c *Controller) SortStudentsByID(group *model.StudyGroup) {
	c.service.SortStudentsByID(group)
}

func (c *Controller) SortStudentsByFullName(group *model.StudyGroup) {
	c.service.SortStudentsByFullName(group)
}
