package csvstream

// Row maps column names to values.
//
// When the header repeats a name, the value from the right-most column with
// that name wins. Use OrderedRow to keep every column.
type Row map[string]string

// Field is one column of an OrderedRow.
type Field struct {
	Name  string
	Value string
}

// OrderedRow holds one Field per header position, in header order.
// Duplicate column names are preserved.
type OrderedRow []Field

// Get gets the value at the specified column index.
// Returns ("", false) if the index is out of bounds.
func (r OrderedRow) Get(index int) (string, bool) {
	if index < 0 || index >= len(r) {
		return "", false
	}
	return r[index].Value, true
}

// GetByName gets the value of the first column with the given name.
// Returns ("", false) if no column has that name.
func (r OrderedRow) GetByName(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Names returns the column names in order.
func (r OrderedRow) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Values returns the values in column order.
func (r OrderedRow) Values() []string {
	values := make([]string, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}

// Map converts r to a Row. Later duplicates overwrite earlier ones, exactly
// as Reader.Read does.
func (r OrderedRow) Map() Row {
	row := make(Row, len(r))
	for _, f := range r {
		row[f.Name] = f.Value
	}
	return row
}

func newRow(header, fields []string) Row {
	row := make(Row, len(header))
	for i, name := range header {
		row[name] = fields[i]
	}
	return row
}

func newOrderedRow(header, fields []string) OrderedRow {
	row := make(OrderedRow, len(header))
	for i, name := range header {
		row[i] = Field{Name: name, Value: fields[i]}
	}
	return row
}
