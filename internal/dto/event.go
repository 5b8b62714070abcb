package dto

type CreateEventRequest struct {
	EventName string `json:"event_name" db:"event_name" validate:"required,max=150"`
	EventDesc string `json:"event_desc" db:"event_desc" validate:"required"`
	CreatedBy int64  `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

type UpdateEventRequest struct {
	EventName *string `json:"event_name" db:"event_name" validate:"omitempty,min=1,max=150"`
	EventDesc *string `json:"event_desc" db:"event_desc" validate:"omitempty,min=1"`
	IsDeleted *bool   `json:"is_deleted" db:"is_deleted"`
}
