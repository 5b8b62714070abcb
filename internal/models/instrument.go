package models

// Instrument is a school-owned instrument, optionally lent to a student.
type Instrument struct {
	ID        int64  `db:"instrument_id" json:"instrument_id"`
	TypeID    int64  `db:"instrument_type" json:"instrument_type"`
	Model     string `db:"instrument_model" json:"instrument_model"`
	BrandID   int64  `db:"instrument_brand" json:"instrument_brand"`
	StudentID *int64 `db:"instrument_student" json:"instrument_student"`
	Audit
}

type InstrumentType struct {
	ID   int64   `db:"instrumenttype_id" json:"instrumenttype_id"`
	Name string  `db:"instrumenttype_name" json:"instrumenttype_name"`
	Desc *string `db:"instrumenttype_desc" json:"instrumenttype_desc"`
	Audit
}

// InstrumentBrand carries an optional logo stored as a blob key.
type InstrumentBrand struct {
	ID   int64   `db:"instrumentbrand_id" json:"instrumentbrand_id"`
	Name string  `db:"instrumentbrand_name" json:"instrumentbrand_name"`
	Desc *string `db:"instrumentbrand_desc" json:"instrumentbrand_desc"`
	Logo *string `db:"instrumentbrand_logo" json:"instrumentbrand_logo"`
	Audit
}
