package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_LabelsKeepOrder(t *testing.T) {
	table := NewTable([]Record{
		{Username: "alice", Password: "p1"},
		{Username: "bob", Password: "p2"},
	})

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"alice", "bob"}, table.Labels())
}

func TestTable_At(t *testing.T) {
	table := NewTable([]Record{
		{Username: "alice", Password: "p1"},
		{Username: "bob", Password: "p2"},
	})

	r, ok := table.At(1)
	assert.True(t, ok)
	assert.Equal(t, Record{Username: "bob", Password: "p2"}, r)

	_, ok = table.At(2)
	assert.False(t, ok)
	_, ok = table.At(-1)
	assert.False(t, ok)
}

func TestTable_IsolatedFromInput(t *testing.T) {
	records := []Record{{Username: "alice", Password: "p1"}}
	table := NewTable(records)

	records[0].Password = "changed"
	labels := table.Labels()
	labels[0] = "mallory"

	r, _ := table.At(0)
	assert.Equal(t, "p1", r.Password)
	assert.Equal(t, []string{"alice"}, table.Labels())
}

func TestTable_ToleratesDuplicateUsernames(t *testing.T) {
	table := NewTable([]Record{
		{Username: "alice", Password: "p1"},
		{Username: "alice", Password: "p2"},
	})

	first, _ := table.At(0)
	second, _ := table.At(1)
	assert.Equal(t, "p1", first.Password)
	assert.Equal(t, "p2", second.Password)
}
