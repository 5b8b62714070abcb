package registry

// School returns the registry of every entity the API manages.
func School() *Registry {
	return MustNew(
		&Schema{
			Resource: ResourceRoles,
			Table:    "roles",
			IDColumn: "role_id",
			Label:    "role",
			Plural:   "roles",
			Columns: []Column{
				{Name: "role_title"},
				{Name: "role_desc"},
			},
			UniqueKeys: []string{"role_title"},
		},
		&Schema{
			Resource: ResourceEmployees,
			Table:    "employees",
			IDColumn: "employee_id",
			Label:    "employee",
			Plural:   "employees",
			Columns: []Column{
				{Name: "employee_name"},
				{Name: "employee_cpf"},
				{Name: "employee_email"},
				{Name: "employee_password"},
				{Name: "employee_phone"},
				{Name: "employee_addr"},
				{Name: "employee_salary"},
				{Name: "employee_role"},
			},
			UniqueKeys:  []string{"employee_cpf", "employee_email", "employee_phone"},
			ForeignKeys: []ForeignKey{{Column: "employee_role", References: ResourceRoles}},
			Joins: []Join{{
				Field:    "role",
				Resource: ResourceRoles,
				Column:   "employee_role",
				Columns:  []string{"role_id", "role_title"},
			}},
			Hidden: []string{"employee_password"},
		},
		&Schema{
			Resource: ResourceResponsibles,
			Table:    "responsibles",
			IDColumn: "responsible_id",
			Label:    "responsible",
			Plural:   "responsibles",
			Columns: []Column{
				{Name: "responsible_name"},
				{Name: "responsible_cpf"},
				{Name: "responsible_email"},
				{Name: "responsible_phone"},
				{Name: "responsible_addr"},
			},
			UniqueKeys: []string{"responsible_cpf", "responsible_email", "responsible_phone"},
		},
		&Schema{
			Resource: ResourceStudents,
			Table:    "students",
			IDColumn: "student_id",
			Label:    "student",
			Plural:   "students",
			Columns: []Column{
				{Name: "student_name"},
				{Name: "student_rg"},
				{Name: "student_cpf"},
				{Name: "student_email"},
				{Name: "student_phone"},
				{Name: "student_addr"},
				{Name: "student_responsible"},
				{Name: "student_scholarship"},
			},
			UniqueKeys:  []string{"student_cpf", "student_email", "student_phone"},
			ForeignKeys: []ForeignKey{{Column: "student_responsible", References: ResourceResponsibles}},
		},
		&Schema{
			Resource: ResourceInstrumentTypes,
			Table:    "instrument_types",
			IDColumn: "instrumenttype_id",
			Label:    "instrument type",
			Plural:   "instrument types",
			Columns: []Column{
				{Name: "instrumenttype_name"},
				{Name: "instrumenttype_desc"},
			},
			UniqueKeys: []string{"instrumenttype_name"},
		},
		&Schema{
			Resource: ResourceInstrumentBrands,
			Table:    "instrument_brands",
			IDColumn: "instrumentbrand_id",
			Label:    "instrument brand",
			Plural:   "instrument brands",
			Columns: []Column{
				{Name: "instrumentbrand_name"},
				{Name: "instrumentbrand_desc"},
				{Name: "instrumentbrand_logo"},
			},
			UniqueKeys: []string{"instrumentbrand_name"},
		},
		&Schema{
			Resource: ResourceInstruments,
			Table:    "instruments",
			IDColumn: "instrument_id",
			Label:    "instrument",
			Plural:   "instruments",
			Columns: []Column{
				{Name: "instrument_type"},
				{Name: "instrument_model"},
				{Name: "instrument_brand"},
				{Name: "instrument_student"},
			},
			ForeignKeys: []ForeignKey{
				{Column: "instrument_type", References: ResourceInstrumentTypes},
				{Column: "instrument_brand", References: ResourceInstrumentBrands},
				{Column: "instrument_student", References: ResourceStudents},
			},
		},
		&Schema{
			Resource: ResourceClasses,
			Table:    "classes",
			IDColumn: "class_id",
			Label:    "class",
			Plural:   "classes",
			Columns: []Column{
				{Name: "class_name"},
				{Name: "class_days"},
				{Name: "class_desc"},
				{Name: "class_duration"},
				{Name: "class_teacher"},
			},
			UniqueKeys:  []string{"class_name"},
			ForeignKeys: []ForeignKey{{Column: "class_teacher", References: ResourceEmployees}},
			Joins: []Join{{
				Field:    "teacher",
				Resource: ResourceEmployees,
				Column:   "class_teacher",
				Columns:  []string{"employee_id", "employee_name", "employee_email"},
			}},
		},
		&Schema{
			Resource: ResourceEvents,
			Table:    "events",
			IDColumn: "event_id",
			Label:    "event",
			Plural:   "events",
			Columns: []Column{
				{Name: "event_name"},
				{Name: "event_desc"},
			},
		},
	)
}
