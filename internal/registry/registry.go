package registry

import "fmt"

// Resource names double as route segments.
const (
	ResourceEmployees        = "employees"
	ResourceRoles            = "roles"
	ResourceStudents         = "students"
	ResourceResponsibles     = "responsibles"
	ResourceInstruments      = "instruments"
	ResourceInstrumentTypes  = "instrument-types"
	ResourceInstrumentBrands = "instrument-brands"
	ResourceClasses          = "classes"
	ResourceEvents           = "events"
)

// Registry holds schemas by resource name.
type Registry struct {
	schemas map[string]*Schema
	order   []string
}

// New validates schemas and resolves their foreign key and join targets.
func New(schemas ...*Schema) (*Registry, error) {
	r := &Registry{schemas: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		if s.Resource == "" || s.Table == "" || s.IDColumn == "" {
			return nil, fmt.Errorf("schema %q: resource, table and id column are required", s.Resource)
		}
		if _, dup := r.schemas[s.Resource]; dup {
			return nil, fmt.Errorf("schema %q registered twice", s.Resource)
		}
		r.schemas[s.Resource] = s
		r.order = append(r.order, s.Resource)
	}

	for _, s := range schemas {
		declared := make(map[string]struct{}, len(s.Columns))
		for _, c := range s.Columns {
			declared[c.Name] = struct{}{}
		}
		for _, k := range s.UniqueKeys {
			if _, ok := declared[k]; !ok {
				return nil, fmt.Errorf("schema %q: unique key %q is not a column", s.Resource, k)
			}
		}
		for i := range s.ForeignKeys {
			fk := &s.ForeignKeys[i]
			target, ok := r.schemas[fk.References]
			if !ok {
				return nil, fmt.Errorf("schema %q: foreign key %q references unknown resource %q", s.Resource, fk.Column, fk.References)
			}
			if _, ok := declared[fk.Column]; !ok {
				return nil, fmt.Errorf("schema %q: foreign key %q is not a column", s.Resource, fk.Column)
			}
			fk.target = target
		}
		for i := range s.Joins {
			j := &s.Joins[i]
			target, ok := r.schemas[j.Resource]
			if !ok {
				return nil, fmt.Errorf("schema %q: join %q references unknown resource %q", s.Resource, j.Field, j.Resource)
			}
			j.target = target
			target.dependents = append(target.dependents, s.Resource)
		}
	}

	return r, nil
}

// MustNew is New for static schema sets.
func MustNew(schemas ...*Schema) *Registry {
	r, err := New(schemas...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the schema registered for resource.
func (r *Registry) Get(resource string) (*Schema, bool) {
	s, ok := r.schemas[resource]
	return s, ok
}

// MustGet returns the schema for resource or panics.
func (r *Registry) MustGet(resource string) *Schema {
	s, ok := r.schemas[resource]
	if !ok {
		panic(fmt.Sprintf("registry: unknown resource %q", resource))
	}
	return s
}

// All returns schemas in registration order.
func (r *Registry) All() []*Schema {
	out := make([]*Schema, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.schemas[name])
	}
	return out
}
