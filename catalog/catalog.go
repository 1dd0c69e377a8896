package catalog

import (
	"fmt"
	"sync"

	"github.com/tidwall/btree"
	"mit.edu/dsg/relopt/common"
)

// Catalog is the in-memory registry of tables that plan leaves read from.
//
// The optimizer only needs the catalog to resolve row schemas, so the catalog
// keeps no persistent state. Tables are indexed by name in a B-tree so that
// listing them is deterministic, which keeps plan dumps stable across runs.
//
// IMMUTABILITY:
// A Table is never modified after AddTable returns it. Plans built against a
// table can therefore keep using its schema while other tables are added.
type Catalog struct {
	mu     sync.RWMutex
	nextID uint32
	byName btree.Map[string, *Table]
	byOid  map[common.ObjectID]*Table
}

// Table groups columns under a unique ObjectID.
type Table struct {
	Oid     common.ObjectID
	Name    string
	Columns []Column
}

// RowSchema returns the schema of rows produced by scanning the table.
func (t *Table) RowSchema() RowSchema {
	return NewRowSchema(t.Columns...)
}

func (t *Table) String() string {
	return fmt.Sprintf("%s%s", t.Name, t.RowSchema())
}

// NewCatalog initializes an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byOid: make(map[common.ObjectID]*Table),
	}
}

// AddTable registers a new table in the catalog.
// It assigns a unique ObjectID to the table. If a table with that name already
// exists, it returns DuplicateObjectError.
func (c *Catalog) AddTable(tableName string, columns []Column) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byName.Get(tableName); exists {
		return nil, common.Error{
			Code:      common.DuplicateObjectError,
			ErrString: fmt.Sprintf("table '%s' already exists", tableName),
		}
	}

	// oid 0 is reserved for INVALID
	c.nextID++

	cols := make([]Column, len(columns))
	copy(cols, columns)
	t := &Table{
		Oid:     common.ObjectID(c.nextID),
		Name:    tableName,
		Columns: cols,
	}
	c.byName.Set(tableName, t)
	c.byOid[t.Oid] = t
	return t, nil
}

// GetTableByName retrieves table metadata by name.
// It returns NoSuchObjectError if the table does not exist.
func (c *Catalog) GetTableByName(name string) (*Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if t, ok := c.byName.Get(name); ok {
		return t, nil
	}
	return nil, common.Error{
		Code:      common.NoSuchObjectError,
		ErrString: fmt.Sprintf("table '%s' not found", name),
	}
}

// GetTableByOid retrieves table metadata by ObjectID.
func (c *Catalog) GetTableByOid(oid common.ObjectID) (*Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if t, ok := c.byOid[oid]; ok {
		return t, nil
	}
	return nil, common.Error{
		Code:      common.NoSuchObjectError,
		ErrString: fmt.Sprintf("table with oid %d not found", oid),
	}
}

// Tables returns every registered table ordered by name.
func (c *Catalog) Tables() []*Table {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Table, 0, c.byName.Len())
	c.byName.Scan(func(_ string, t *Table) bool {
		out = append(out, t)
		return true
	})
	return out
}
