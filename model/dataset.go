package model

// Dataset is an ordered collection of tables extracted from a single
// document, in document order.
type Dataset struct {
	Tables []*Table
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{Tables: make([]*Table, 0)}
}

// Add appends a table to the dataset.
func (d *Dataset) Add(t *Table) {
	d.Tables = append(d.Tables, t)
}

// Len returns the number of tables in the dataset.
func (d *Dataset) Len() int {
	return len(d.Tables)
}

// Table returns the table at the given index, or nil if out of bounds.
func (d *Dataset) Table(i int) *Table {
	if i < 0 || i >= len(d.Tables) {
		return nil
	}
	return d.Tables[i]
}
