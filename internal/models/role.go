package models

// Role is a job title employees are assigned to.
type Role struct {
	ID    int64   `db:"role_id" json:"role_id"`
	Title string  `db:"role_title" json:"role_title"`
	Desc  *string `db:"role_desc" json:"role_desc"`
	Audit
}

// RoleRef is the role summary joined onto employees.
type RoleRef struct {
	ID    *int64  `db:"role_id" json:"role_id"`
	Title *string `db:"role_title" json:"role_title"`
}
