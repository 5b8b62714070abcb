package dto

// CreateRoleRequest is the payload for POST /roles.
type CreateRoleRequest struct {
	RoleTitle string  `json:"role_title" db:"role_title" validate:"required,max=100"`
	RoleDesc  *string `json:"role_desc" db:"role_desc" validate:"omitempty,max=500"`
	CreatedBy int64   `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

// UpdateRoleRequest is the partial payload for PUT /roles/:id.
type UpdateRoleRequest struct {
	RoleTitle *string `json:"role_title" db:"role_title" validate:"omitempty,min=1,max=100"`
	RoleDesc  *string `json:"role_desc" db:"role_desc" validate:"omitempty,max=500"`
	IsDeleted *bool   `json:"is_deleted" db:"is_deleted"`
}
