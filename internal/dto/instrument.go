package dto

type CreateInstrumentRequest struct {
	InstrumentType    int64  `json:"instrument_type" db:"instrument_type" validate:"required,gt=0"`
	InstrumentModel   string `json:"instrument_model" db:"instrument_model" validate:"required,max=150"`
	InstrumentBrand   int64  `json:"instrument_brand" db:"instrument_brand" validate:"required,gt=0"`
	InstrumentStudent *int64 `json:"instrument_student" db:"instrument_student" validate:"omitempty,gt=0"`
	CreatedBy         int64  `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

type UpdateInstrumentRequest struct {
	InstrumentType    *int64  `json:"instrument_type" db:"instrument_type" validate:"omitempty,gt=0"`
	InstrumentModel   *string `json:"instrument_model" db:"instrument_model" validate:"omitempty,min=1,max=150"`
	InstrumentBrand   *int64  `json:"instrument_brand" db:"instrument_brand" validate:"omitempty,gt=0"`
	InstrumentStudent *int64  `json:"instrument_student" db:"instrument_student" validate:"omitempty,gt=0"`
	IsDeleted         *bool   `json:"is_deleted" db:"is_deleted"`
}

type CreateInstrumentTypeRequest struct {
	InstrumentTypeName string  `json:"instrumenttype_name" db:"instrumenttype_name" validate:"required,max=100"`
	InstrumentTypeDesc *string `json:"instrumenttype_desc" db:"instrumenttype_desc" validate:"omitempty,max=500"`
	CreatedBy          int64   `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

type UpdateInstrumentTypeRequest struct {
	InstrumentTypeName *string `json:"instrumenttype_name" db:"instrumenttype_name" validate:"omitempty,min=1,max=100"`
	InstrumentTypeDesc *string `json:"instrumenttype_desc" db:"instrumenttype_desc" validate:"omitempty,max=500"`
	IsDeleted          *bool   `json:"is_deleted" db:"is_deleted"`
}

// CreateInstrumentBrandRequest omits the logo; it is uploaded separately.
type CreateInstrumentBrandRequest struct {
	InstrumentBrandName string  `json:"instrumentbrand_name" db:"instrumentbrand_name" validate:"required,max=100"`
	InstrumentBrandDesc *string `json:"instrumentbrand_desc" db:"instrumentbrand_desc" validate:"omitempty,max=500"`
	CreatedBy           int64   `json:"created_by" db:"created_by" validate:"required,gt=0"`
}

type UpdateInstrumentBrandRequest struct {
	InstrumentBrandName *string `json:"instrumentbrand_name" db:"instrumentbrand_name" validate:"omitempty,min=1,max=100"`
	InstrumentBrandDesc *string `json:"instrumentbrand_desc" db:"instrumentbrand_desc" validate:"omitempty,max=500"`
	IsDeleted           *bool   `json:"is_deleted" db:"is_deleted"`
}

// SetInstrumentBrandLogo is used internally once a logo upload is stored.
type SetInstrumentBrandLogo struct {
	InstrumentBrandLogo *string `db:"instrumentbrand_logo"`
}
