package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mit.edu/dsg/relopt/common"
)

func empColumns() []Column {
	return []Column{
		{Name: "id", Type: common.IntType},
		{Name: "name", Type: common.StringType},
		{Name: "age", Type: common.IntType},
	}
}

func TestAddAndLookupTable(t *testing.T) {
	c := NewCatalog()
	emp, err := c.AddTable("emp", empColumns())
	require.NoError(t, err)
	assert.NotEqual(t, common.InvalidObjectID, emp.Oid)

	byName, err := c.GetTableByName("emp")
	require.NoError(t, err)
	assert.Same(t, emp, byName)

	byOid, err := c.GetTableByOid(emp.Oid)
	require.NoError(t, err)
	assert.Same(t, emp, byOid)

	_, err = c.GetTableByName("dept")
	assert.True(t, common.IsCode(err, common.NoSuchObjectError))
	_, err = c.GetTableByOid(emp.Oid + 100)
	assert.True(t, common.IsCode(err, common.NoSuchObjectError))
}

func TestDuplicateTable(t *testing.T) {
	c := NewCatalog()
	_, err := c.AddTable("emp", empColumns())
	require.NoError(t, err)
	_, err = c.AddTable("emp", nil)
	assert.True(t, common.IsCode(err, common.DuplicateObjectError))
}

func TestTablesListedByName(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{"orders", "emp", "dept"} {
		_, err := c.AddTable(name, empColumns())
		require.NoError(t, err)
	}
	var names []string
	for _, tbl := range c.Tables() {
		names = append(names, tbl.Name)
	}
	assert.Equal(t, []string{"dept", "emp", "orders"}, names)
}

func TestTableColumnsAreCopied(t *testing.T) {
	c := NewCatalog()
	cols := empColumns()
	emp, err := c.AddTable("emp", cols)
	require.NoError(t, err)
	cols[0].Name = "changed"
	assert.Equal(t, "id", emp.RowSchema().Field(0).Name)
}

func TestRowSchema(t *testing.T) {
	s := NewRowSchema(empColumns()...)
	assert.Equal(t, 3, s.FieldCount())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
	assert.False(t, s.Contains(-1))
	assert.Equal(t, Column{Name: "age", Type: common.IntType}, s.Field(2))
	assert.Equal(t, []common.Type{common.IntType, common.StringType, common.IntType}, s.Types())
	assert.Equal(t, "(id int, name string, age int)", s.String())
	assert.Panics(t, func() { s.Field(3) })

	fields := s.Fields()
	fields[0].Name = "mutated"
	assert.Equal(t, "id", s.Field(0).Name, "Fields must return a copy")

	assert.True(t, s.Equal(NewRowSchema(empColumns()...)))
	assert.False(t, s.Equal(NewRowSchema(empColumns()[:2]...)))
}
