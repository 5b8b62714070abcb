package models

import "github.com/shopspring/decimal"

// Student represents a learner enrolled in the school.
type Student struct {
	ID            int64               `db:"student_id" json:"student_id"`
	Name          string              `db:"student_name" json:"student_name"`
	RG            *string             `db:"student_rg" json:"student_rg"`
	CPF           string              `db:"student_cpf" json:"student_cpf"`
	Email         *string             `db:"student_email" json:"student_email"`
	Phone         *string             `db:"student_phone" json:"student_phone"`
	Addr          string              `db:"student_addr" json:"student_addr"`
	ResponsibleID *int64              `db:"student_responsible" json:"student_responsible"`
	Scholarship   decimal.NullDecimal `db:"student_scholarship" json:"student_scholarship"`
	Audit
}

// Responsible is the guardian answering for one or more students.
type Responsible struct {
	ID    int64   `db:"responsible_id" json:"responsible_id"`
	Name  string  `db:"responsible_name" json:"responsible_name"`
	CPF   string  `db:"responsible_cpf" json:"responsible_cpf"`
	Email *string `db:"responsible_email" json:"responsible_email"`
	Phone *string `db:"responsible_phone" json:"responsible_phone"`
	Addr  string  `db:"responsible_addr" json:"responsible_addr"`
	Audit
}
