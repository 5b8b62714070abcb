package dto

type CreateClassRequest struct {
	ClassName     string  `json:"class_name" db:"class_name" validate:"required,max=100"`
	ClassDays     string  `json:"class_days" db:"class_days" validate:"required,max=100"`
	ClassDesc     *string `json:"class_desc" db:"class_desc" validate:"omitempty,max=500"`
	ClassDuration int64   `json:"class_duration" db:"class_duration" validate:"required,gt=0"`
	ClassTeacher  int64   `json:"class_teacher" db:"class_teacher" validate:"required,gt=0"`
	CreatedBy     int64   `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

type UpdateClassRequest struct {
	ClassName     *string `json:"class_name" db:"class_name" validate:"omitempty,min=1,max=100"`
	ClassDays     *string `json:"class_days" db:"class_days" validate:"omitempty,min=1,max=100"`
	ClassDesc     *string `json:"class_desc" db:"class_desc" validate:"omitempty,max=500"`
	ClassDuration *int64  `json:"class_duration" db:"class_duration" validate:"omitempty,gt=0"`
	ClassTeacher  *int64  `json:"class_teacher" db:"class_teacher" validate:"omitempty,gt=0"`
	IsDeleted     *bool   `json:"is_deleted" db:"is_deleted"`
}

// AddStudentToClassRequest is the body of POST /classes/:id.
type AddStudentToClassRequest struct {
	StudentID int64 `json:"student_id" validate:"required,gt=0"`
	CreatedBy int64 `json:"created_by" validate:"required,gt=0"`
}
