package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest is the payload for POST /employees. The password is
// hashed before it is stored.
type CreateEmployeeRequest struct {
	EmployeeName     string           `json:"employee_name" db:"employee_name" validate:"required,max=150"`
	EmployeeCPF      string           `json:"employee_cpf" db:"employee_cpf" validate:"required,min=11,max=14"`
	EmployeeEmail    string           `json:"employee_email" db:"employee_email" validate:"required,email,max=150"`
	EmployeePassword string           `json:"employee_password" db:"employee_password" validate:"required,min=6,max=72"`
	EmployeePhone    string           `json:"employee_phone" db:"employee_phone" validate:"required,max=20"`
	EmployeeAddr     string           `json:"employee_addr" db:"employee_addr" validate:"required,max=255"`
	EmployeeSalary   *decimal.Decimal `json:"employee_salary" db:"employee_salary" validate:"required"`
	EmployeeRole     int64            `json:"employee_role" db:"employee_role" validate:"required,gt=0"`
	CreatedBy        int64            `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

// UpdateEmployeeRequest is the partial payload for PUT /employees/:id.
type UpdateEmployeeRequest struct {
	EmployeeName     *string          `json:"employee_name" db:"employee_name" validate:"omitempty,min=1,max=150"`
	EmployeeCPF      *string          `json:"employee_cpf" db:"employee_cpf" validate:"omitempty,min=11,max=14"`
	EmployeeEmail    *string          `json:"employee_email" db:"employee_email" validate:"omitempty,email,max=150"`
	EmployeePassword *string          `json:"employee_password" db:"employee_password" validate:"omitempty,min=6,max=72"`
	EmployeePhone    *string          `json:"employee_phone" db:"employee_phone" validate:"omitempty,min=1,max=20"`
	EmployeeAddr     *string          `json:"employee_addr" db:"employee_addr" validate:"omitempty,min=1,max=255"`
	EmployeeSalary   *decimal.Decimal `json:"employee_salary" db:"employee_salary"`
	EmployeeRole     *int64           `json:"employee_role" db:"employee_role" validate:"omitempty,gt=0"`
	IsDeleted        *bool            `json:"is_deleted" db:"is_deleted"`
}

// LoginRequest holds employee credentials.
type LoginRequest struct {
	EmployeeEmail    string `json:"employee_email" validate:"required,email"`
	EmployeePassword string `json:"employee_password" validate:"required"`
}
