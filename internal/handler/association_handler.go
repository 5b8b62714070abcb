package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/service"
	"github.com/Quinhas/sgpg-api/pkg/response"
)

// AssociationHandler exposes class enrolment endpoints.
type AssociationHandler struct {
	assocs *service.AssociationService
}

// NewAssociationHandler constructs AssociationHandler.
func NewAssociationHandler(assocs *service.AssociationService) *AssociationHandler {
	return &AssociationHandler{assocs: assocs}
}

// Create godoc
// @Summary Add a student to a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param payload body dto.AddStudentToClassRequest true "Student"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} errors.Error
// @Failure 409 {object} errors.Error
// @Router /classes/{id} [post]
func (h *AssociationHandler) Create(c *gin.Context) {
	classID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AddStudentToClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	assoc, err := h.assocs.Create(c.Request.Context(), classID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "student added to class", assoc)
}

// List godoc
// @Summary List the students of a class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{id}/students [get]
func (h *AssociationHandler) List(c *gin.Context) {
	classID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	assocs, err := h.assocs.ListByClass(c.Request.Context(), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("%d students returned", len(assocs)), assocs)
}

// Get godoc
// @Summary Get one student of a class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Param student_id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{id}/students/{student_id} [get]
func (h *AssociationHandler) Get(c *gin.Context) {
	classID, studentID, err := pairIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	assoc, err := h.assocs.Find(c.Request.Context(), classID, studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "student of class found", assoc)
}

// Delete godoc
// @Summary Remove a student from a class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Param student_id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} errors.Error
// @Router /classes/{id}/{student_id} [delete]
func (h *AssociationHandler) Delete(c *gin.Context) {
	classID, studentID, err := pairIDs(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	assoc, err := h.assocs.Delete(c.Request.Context(), classID, studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "student removed from class", assoc)
}

// Routes returns the enrolment routes.
func (h *AssociationHandler) Routes() []Route {
	return []Route{
		{Method: "POST", Path: "/classes/:id", Handler: h.Create},
		{Method: "GET", Path: "/classes/:id/students", Handler: h.List},
		{Method: "GET", Path: "/classes/:id/students/:student_id", Handler: h.Get},
		{Method: "DELETE", Path: "/classes/:id/:student_id", Handler: h.Delete},
	}
}

func pairIDs(c *gin.Context) (int64, int64, error) {
	classID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	studentID, err := pathID(c, "student_id")
	if err != nil {
		return 0, 0, err
	}
	return classID, studentID, nil
}
