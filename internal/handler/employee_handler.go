package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/service"
	"github.com/Quinhas/sgpg-api/pkg/response"
)

// EmployeeHandler adds the login endpoint to the employee resource.
type EmployeeHandler struct {
	*ResourceHandler[models.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
	employees *service.EmployeeService
}

// NewEmployeeHandler constructs EmployeeHandler.
func NewEmployeeHandler(employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		ResourceHandler: NewResourceHandler[models.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest](employees),
		employees:       employees,
	}
}

// Login godoc
// @Summary Check employee credentials
// @Tags Employees
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /employees/login [post]
func (h *EmployeeHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	employee, err := h.employees.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "login successful", employee)
}

// Routes returns the login route ahead of the standard employee routes.
func (h *EmployeeHandler) Routes() []Route {
	return append([]Route{{Method: "POST", Path: "/employees/login", Handler: h.Login}}, h.ResourceHandler.Routes()...)
}
