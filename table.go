package nehody

import "fmt"

// Column is one typed column vector of a Table. Exactly one of the value
// slices is populated, selected by Kind. Fields are exported for gob.
type Column struct {
	Kind Kind
	Str  []string
	I8   []int8
	I16  []int16
}

// Len returns the number of values in the column.
func (c Column) Len() int {
	switch c.Kind {
	case KindInt8:
		return len(c.I8)
	case KindInt16:
		return len(c.I16)
	default:
		return len(c.Str)
	}
}

// Int returns the value at row i widened to int. Valid for integer columns
// only; string columns return 0.
func (c Column) Int(i int) int {
	switch c.Kind {
	case KindInt8:
		return int(c.I8[i])
	case KindInt16:
		return int(c.I16[i])
	default:
		return 0
	}
}

// String returns the value at row i for string columns, "" otherwise.
func (c Column) String(i int) string {
	if c.Kind == KindString {
		return c.Str[i]
	}
	return ""
}

// Table is a column-major set of typed vectors sharing one header. Tables
// are never mutated after construction; Concat builds new ones.
type Table struct {
	Header []string
	Cols   []Column
}

// Rows returns the row count (the shared length of all column vectors).
func (t *Table) Rows() int {
	if t == nil || len(t.Cols) == 0 {
		return 0
	}
	return t.Cols[0].Len()
}

// Col returns the column with the given header name.
func (t *Table) Col(name string) (Column, bool) {
	if t == nil {
		return Column{}, false
	}
	for i, h := range t.Header {
		if h == name && i < len(t.Cols) {
			return t.Cols[i], true
		}
	}
	return Column{}, false
}

// emptyTable returns a table with the full 65-column shape and zero rows.
func emptyTable() *Table {
	cols := make([]Column, 0, len(columnSchema)+1)
	for _, spec := range columnSchema {
		cols = append(cols, Column{Kind: spec.Kind})
	}
	cols = append(cols, Column{Kind: regionColumn.Kind})
	return &Table{Header: Header(), Cols: cols}
}

// Concat stacks tables row-wise into a new table. All inputs must share the
// same column shape; zero-row inputs are tolerated. Concat of no tables
// returns an empty table.
func Concat(tables ...*Table) (*Table, error) {
	var parts []*Table
	for _, t := range tables {
		if t != nil {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return emptyTable(), nil
	}

	first := parts[0]
	out := &Table{Header: first.Header, Cols: make([]Column, len(first.Cols))}
	for i, col := range first.Cols {
		out.Cols[i].Kind = col.Kind
	}

	for _, t := range parts {
		if len(t.Cols) != len(out.Cols) {
			return nil, fmt.Errorf("concat: column count mismatch: %d vs %d", len(t.Cols), len(out.Cols))
		}
		for i, col := range t.Cols {
			if col.Kind != out.Cols[i].Kind {
				return nil, fmt.Errorf("concat: column %d kind mismatch", i)
			}
			switch col.Kind {
			case KindInt8:
				out.Cols[i].I8 = append(out.Cols[i].I8, col.I8...)
			case KindInt16:
				out.Cols[i].I16 = append(out.Cols[i].I16, col.I16...)
			default:
				out.Cols[i].Str = append(out.Cols[i].Str, col.Str...)
			}
		}
	}
	return out, nil
}
