// Package models defines the data model shared by the loader and the
// validators: loaded tables, the cross-table index database, and the
// typed per-table validation specs.
package models

import "strings"

// Value is a single cell, resolved to scalar or list shape at load
// time so validators never have to probe it.
type Value struct {
	IsList bool
	Scalar string
	List   []string
}

// Scalar value constructor.
func ScalarValue(s string) Value {
	return Value{Scalar: s}
}

// List value constructor.
func ListValue(items []string) Value {
	return Value{IsList: true, List: items}
}

// Empty reports whether the cell carries no data at all.
func (v Value) Empty() bool {
	if v.IsList {
		return len(v.List) == 0
	}
	return v.Scalar == ""
}

// String renders the cell for error messages.
func (v Value) String() string {
	if v.IsList {
		return strings.Join(v.List, ";")
	}
	return v.Scalar
}

// Row is one data record of a table. Position is the zero-based index
// of the row in the file body; the header occupies file line 1, so the
// row's file line is Position+2.
type Row struct {
	Fields   map[string]Value
	Position int
}

// Line returns the 1-based file line number of the row.
func (r Row) Line() int {
	return r.Position + 2
}

// Get returns the named cell, or a zero Value if the column is absent.
func (r Row) Get(name string) Value {
	return r.Fields[name]
}

// Key extracts the row's key per the table spec, lower-casing it when
// the spec normalizes keys.
func (r Row) Key(spec TableSpec) string {
	k := r.Get(spec.KeyField).Scalar
	if spec.NormalizeKey {
		k = strings.ToLower(k)
	}
	return k
}

// Table is a named, immutable dataset loaded from one file.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Index maps a table's key values to their rows. Duplicate keys are
// resolved last-row-wins during construction; reporting the duplicate
// is the duplicate detector's job, not the index builder's.
type Index map[string]Row

// Has reports whether a key is present.
func (ix Index) Has(key string) bool {
	_, ok := ix[key]
	return ok
}

// Database maps table name to its index. It is built once before
// validation starts and is read-only afterwards; every validator
// receives it explicitly.
type Database map[string]Index

// ValidationError is one accumulated violation, localized to a file
// line. Ordering within a file follows row encounter order.
type ValidationError struct {
	Line    int
	Message string
}
