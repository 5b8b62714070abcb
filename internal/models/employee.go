package models

import "github.com/shopspring/decimal"

// Employee is a staff member. PasswordHash is loaded for credential checks
// and never serialised.
type Employee struct {
	ID           int64           `db:"employee_id" json:"employee_id"`
	Name         string          `db:"employee_name" json:"employee_name"`
	CPF          string          `db:"employee_cpf" json:"employee_cpf"`
	Email        string          `db:"employee_email" json:"employee_email"`
	PasswordHash string          `db:"employee_password" json:"-"`
	Phone        string          `db:"employee_phone" json:"employee_phone"`
	Addr         string          `db:"employee_addr" json:"employee_addr"`
	Salary       decimal.Decimal `db:"employee_salary" json:"employee_salary"`
	RoleID       int64           `db:"employee_role" json:"employee_role"`
	Audit
	Role *RoleRef `db:"role" json:"role,omitempty"`
}

// EmployeeRef is the employee summary joined onto classes.
type EmployeeRef struct {
	ID    *int64  `db:"employee_id" json:"employee_id"`
	Name  *string `db:"employee_name" json:"employee_name"`
	Email *string `db:"employee_email" json:"employee_email"`
}
