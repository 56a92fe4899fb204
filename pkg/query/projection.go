package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names onto the columns of one aliased table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  []string
	lookup  map[string]string
}

// NewProjectionMap creates an empty projection for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		lookup: make(map[string]string),
	}
}

// Project maps column onto the view field name. Projection order is column order.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.fields = append(p.fields, field)
	p.lookup[field] = qualified
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string { return p.alias }

// Table returns the qualified table with its alias, e.g. "public.buyers b".
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for field. Unknown fields are returned unchanged.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.lookup[field]; ok {
		return col
	}
	return field
}

// Has reports whether field is projected.
func (p *ProjectionMap) Has(field string) bool {
	_, ok := p.lookup[field]
	return ok
}

// Fields returns the projected view field names in projection order.
func (p *ProjectionMap) Fields() []string {
	return append([]string(nil), p.fields...)
}

// Columns returns the comma-separated select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// ColumnList returns the qualified columns in projection order.
func (p *ProjectionMap) ColumnList() []string {
	return append([]string(nil), p.columns...)
}
