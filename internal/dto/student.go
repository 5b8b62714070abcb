package dto

import "github.com/shopspring/decimal"

type CreateStudentRequest struct {
	StudentName        string           `json:"student_name" db:"student_name" validate:"required,max=150"`
	StudentRG          *string          `json:"student_rg" db:"student_rg" validate:"omitempty,max=20"`
	StudentCPF         string           `json:"student_cpf" db:"student_cpf" validate:"required,min=11,max=14"`
	StudentEmail       *string          `json:"student_email" db:"student_email" validate:"omitempty,email,max=150"`
	StudentPhone       *string          `json:"student_phone" db:"student_phone" validate:"omitempty,max=20"`
	StudentAddr        string           `json:"student_addr" db:"student_addr" validate:"required,max=255"`
	StudentResponsible *int64           `json:"student_responsible" db:"student_responsible" validate:"omitempty,gt=0"`
	StudentScholarship *decimal.Decimal `json:"student_scholarship" db:"student_scholarship"`
	CreatedBy          int64            `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

type UpdateStudentRequest struct {
	StudentName        *string          `json:"student_name" db:"student_name" validate:"omitempty,min=1,max=150"`
	StudentRG          *string          `json:"student_rg" db:"student_rg" validate:"omitempty,max=20"`
	StudentCPF         *string          `json:"student_cpf" db:"student_cpf" validate:"omitempty,min=11,max=14"`
	StudentEmail       *string          `json:"student_email" db:"student_email" validate:"omitempty,email,max=150"`
	StudentPhone       *string          `json:"student_phone" db:"student_phone" validate:"omitempty,max=20"`
	StudentAddr        *string          `json:"student_addr" db:"student_addr" validate:"omitempty,min=1,max=255"`
	StudentResponsible *int64           `json:"student_responsible" db:"student_responsible" validate:"omitempty,gt=0"`
	StudentScholarship *decimal.Decimal `json:"student_scholarship" db:"student_scholarship"`
	IsDeleted          *bool            `json:"is_deleted" db:"is_deleted"`
}

type CreateResponsibleRequest struct {
	ResponsibleName  string  `json:"responsible_name" db:"responsible_name" validate:"required,max=150"`
	ResponsibleCPF   string  `json:"responsible_cpf" db:"responsible_cpf" validate:"required,min=11,max=14"`
	ResponsibleEmail *string `json:"responsible_email" db:"responsible_email" validate:"omitempty,email,max=150"`
	ResponsiblePhone *string `json:"responsible_phone" db:"responsible_phone" validate:"omitempty,max=20"`
	ResponsibleAddr  string  `json:"responsible_addr" db:"responsible_addr" validate:"required,max=255"`
	CreatedBy        int64   `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

type UpdateResponsibleRequest struct {
	ResponsibleName  *string `json:"responsible_name" db:"responsible_name" validate:"omitempty,min=1,max=150"`
	ResponsibleCPF   *string `json:"responsible_cpf" db:"responsible_cpf" validate:"omitempty,min=11,max=14"`
	ResponsibleEmail *string `json:"responsible_email" db:"responsible_email" validate:"omitempty,email,max=150"`
	ResponsiblePhone *string `json:"responsible_phone" db:"responsible_phone" validate:"omitempty,max=20"`
	ResponsibleAddr  *string `json:"responsible_addr" db:"responsible_addr" validate:"omitempty,min=1,max=255"`
	IsDeleted        *bool   `json:"is_deleted" db:"is_deleted"`
}
