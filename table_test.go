package nehody

import "testing"

func TestConcat(t *testing.T) {
	t.Run("NoInputsYieldsEmptyShape", func(t *testing.T) {
		table, err := Concat()
		if err != nil {
			t.Fatalf("Concat(): %v", err)
		}
		if table.Rows() != 0 {
			t.Errorf("rows = %d, want 0", table.Rows())
		}
		if len(table.Cols) != 65 {
			t.Errorf("columns = %d, want 65", len(table.Cols))
		}
	})

	t.Run("NilInputsIgnored", func(t *testing.T) {
		table, err := Concat(nil, emptyTable(), nil)
		if err != nil {
			t.Fatalf("Concat: %v", err)
		}
		if table.Rows() != 0 {
			t.Errorf("rows = %d, want 0", table.Rows())
		}
	})

	t.Run("ShapeMismatchRejected", func(t *testing.T) {
		short := &Table{
			Header: []string{"ID"},
			Cols:   []Column{{Kind: KindString}},
		}
		if _, err := Concat(emptyTable(), short); err == nil {
			t.Error("expected error for column count mismatch, got nil")
		}
	})

	t.Run("KindMismatchRejected", func(t *testing.T) {
		a := &Table{Header: []string{"x"}, Cols: []Column{{Kind: KindInt8, I8: []int8{1}}}}
		b := &Table{Header: []string{"x"}, Cols: []Column{{Kind: KindInt16, I16: []int16{1}}}}
		if _, err := Concat(a, b); err == nil {
			t.Error("expected error for kind mismatch, got nil")
		}
	})

	t.Run("DoesNotMutateInputs", func(t *testing.T) {
		a := &Table{Header: []string{"x"}, Cols: []Column{{Kind: KindInt8, I8: []int8{1, 2}}}}
		b := &Table{Header: []string{"x"}, Cols: []Column{{Kind: KindInt8, I8: []int8{3}}}}
		merged, err := Concat(a, b)
		if err != nil {
			t.Fatalf("Concat: %v", err)
		}
		if merged.Rows() != 3 {
			t.Errorf("merged rows = %d, want 3", merged.Rows())
		}
		if a.Rows() != 2 || b.Rows() != 1 {
			t.Error("Concat mutated its inputs")
		}
		merged.Cols[0].I8[0] = 9
		if a.Cols[0].I8[0] != 1 {
			t.Error("merged table shares backing storage with input")
		}
	})
}

func TestColLookup(t *testing.T) {
	table := emptyTable()
	if _, ok := table.Col("Region"); !ok {
		t.Error("Region column not found")
	}
	if _, ok := table.Col("Datum"); !ok {
		t.Error("Datum column not found")
	}
	if _, ok := table.Col("neexistuje"); ok {
		t.Error("lookup of unknown column succeeded")
	}
	var nilTable *Table
	if _, ok := nilTable.Col("Datum"); ok {
		t.Error("nil table lookup succeeded")
	}
	if nilTable.Rows() != 0 {
		t.Error("nil table has rows")
	}
}
