package models

type Event struct {
	ID   int64  `db:"event_id" json:"event_id"`
	Name string `db:"event_name" json:"event_name"`
	Desc string `db:"event_desc" json:"event_desc"`
	Audit
}
