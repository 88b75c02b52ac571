// Package credential holds the in-memory credential table.
package credential

// Record is one username/password pair. Username doubles as the display label.
type Record struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Table is an ordered, read-only list of records addressed by position
type Table struct {
	records []Record
}

// NewTable copies records into a new table
func NewTable(records []Record) *Table {
	return &Table{records: append([]Record(nil), records...)}
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.records)
}

// Labels returns the usernames in table order
func (t *Table) Labels() []string {
	labels := make([]string, len(t.records))
	for i, r := range t.records {
		labels[i] = r.Username
	}
	return labels
}

// At returns the record at index i, or false when i is out of range
func (t *Table) At(i int) (Record, bool) {
	if i < 0 || i >= len(t.records) {
		return Record{}, false
	}
	return t.records[i], true
}
