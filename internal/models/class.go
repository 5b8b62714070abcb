package models

import "time"

// Class is a recurring lesson taught by one employee. Duration is in minutes.
type Class struct {
	ID        int64   `db:"class_id" json:"class_id"`
	Name      string  `db:"class_name" json:"class_name"`
	Days      string  `db:"class_days" json:"class_days"`
	Desc      *string `db:"class_desc" json:"class_desc"`
	Duration  int64   `db:"class_duration" json:"class_duration"`
	TeacherID int64   `db:"class_teacher" json:"class_teacher"`
	Audit
	Teacher *EmployeeRef `db:"teacher" json:"teacher,omitempty"`
}

// StudentOfClass links a student to a class; the pair is unique.
type StudentOfClass struct {
	ClassID   int64     `db:"class_id" json:"class_id"`
	StudentID int64     `db:"student_id" json:"student_id"`
	CreatedBy int64     `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
