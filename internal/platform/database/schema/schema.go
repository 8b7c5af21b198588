// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the relational table definitions of the content store.
//
// Column names are lowercase without separators, matching the migrations.
// SQL is built only from these constants, never from client input.
package schema

// SchemaContent is the PostgreSQL schema holding every content table.
const SchemaContent = "content"

// FieldColumn maps a record's JSON field to its column.
type FieldColumn struct {
	Field  string
	Column string
}

// ContentTable describes one content table: the shared metadata columns
// followed by the resource attribute columns in scan order.
type ContentTable struct {
	Table     string
	ID        string
	CreatedBy string
	CreatedAt string
	UpdatedAt string
	Fields    []FieldColumn
}

func newContentTable(table string, fields ...FieldColumn) ContentTable {
	return ContentTable{
		Table:     SchemaContent + "." + table,
		ID:        "id",
		CreatedBy: "createdby",
		CreatedAt: "createdat",
		UpdatedAt: "updatedat",
		Fields:    fields,
	}
}

// MetaColumns lists the metadata columns in scan order.
func (t ContentTable) MetaColumns() []string {
	return []string{t.ID, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}

// FieldColumns lists the attribute columns in scan order.
func (t ContentTable) FieldColumns() []string {
	columns := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		columns = append(columns, f.Column)
	}
	return columns
}

// Columns lists every column in scan order.
func (t ContentTable) Columns() []string {
	return append(t.MetaColumns(), t.FieldColumns()...)
}

// Column resolves a JSON field name, including the metadata fields.
func (t ContentTable) Column(field string) (string, bool) {
	switch field {
	case "id":
		return t.ID, true
	case "createdBy":
		return t.CreatedBy, true
	case "createdAt":
		return t.CreatedAt, true
	case "updatedAt":
		return t.UpdatedAt, true
	}
	for _, f := range t.Fields {
		if f.Field == field {
			return f.Column, true
		}
	}
	return "", false
}
