// Package planfile reads plan descriptions written in YAML and builds the
// catalog and plan tree they describe. A plan file looks like:
//
//	tables:
//	  - name: emp
//	    columns:
//	      - {name: id, type: int}
//	      - {name: name, type: string}
//	plan:
//	  sort:
//	    collations:
//	      - {field: 1, direction: desc}
//	    input:
//	      scan: {table: emp}
package planfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"mit.edu/dsg/relopt/catalog"
	"mit.edu/dsg/relopt/common"
	"mit.edu/dsg/relopt/planner"
	"mit.edu/dsg/relopt/trait"
)

type File struct {
	Tables []TableConfig `yaml:"tables"`
	Plan   NodeConfig    `yaml:"plan"`
}

type TableConfig struct {
	Name    string         `yaml:"name"`
	Columns []ColumnConfig `yaml:"columns"`
}

type ColumnConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// NodeConfig describes one plan node. Exactly one operator must be set.
type NodeConfig struct {
	// Convention defaults to NONE. Names are case-insensitive.
	Convention string      `yaml:"convention,omitempty"`
	Scan       *ScanConfig `yaml:"scan,omitempty"`
	Sort       *SortConfig `yaml:"sort,omitempty"`
}

type ScanConfig struct {
	Table string `yaml:"table"`
}

type SortConfig struct {
	Collations []CollationConfig `yaml:"collations"`
	Input      *NodeConfig       `yaml:"input"`
}

type CollationConfig struct {
	Field     int    `yaml:"field"`
	// Direction defaults to asc.
	Direction string `yaml:"direction,omitempty"`
}

// Load decodes a plan file. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decoding plan file")
	}
	return &f, nil
}

func invalid(format string, args ...any) error {
	return common.Error{Code: common.InvalidConfigError, ErrString: fmt.Sprintf(format, args...)}
}

// Build registers the file's tables in a new catalog and builds its plan in
// cluster.
func (f *File) Build(cluster *planner.Cluster) (planner.PlanNode, *catalog.Catalog, error) {
	cat := catalog.NewCatalog()
	for _, tc := range f.Tables {
		cols := make([]catalog.Column, len(tc.Columns))
		for i, cc := range tc.Columns {
			t, err := common.ParseType(cc.Type)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "table %s column %s", tc.Name, cc.Name)
			}
			cols[i] = catalog.Column{Name: cc.Name, Type: t}
		}
		if _, err := cat.AddTable(tc.Name, cols); err != nil {
			return nil, nil, errors.Wrap(err, "registering tables")
		}
	}

	node, err := buildNode(cluster, cat, &f.Plan, "plan")
	if err != nil {
		return nil, nil, err
	}
	return node, cat, nil
}

func buildNode(cluster *planner.Cluster, cat *catalog.Catalog, nc *NodeConfig, path string) (planner.PlanNode, error) {
	if nc == nil {
		return nil, invalid("%s: missing node", path)
	}
	if (nc.Scan == nil) == (nc.Sort == nil) {
		return nil, invalid("%s: exactly one of scan or sort must be set", path)
	}

	convention := trait.None
	if nc.Convention != "" {
		convention = trait.NewConvention(strings.ToUpper(nc.Convention))
	}
	// Node constructors panic on a physical convention; a file is user input.
	if !convention.Equal(trait.None) {
		return nil, invalid("%s: convention %s is not supported by logical nodes", path, convention)
	}
	traits := cluster.TraitSetOf(convention)

	if nc.Scan != nil {
		table, err := cat.GetTableByName(nc.Scan.Table)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.scan", path)
		}
		return planner.NewSeqScanNode(cluster, traits, table), nil
	}

	input, err := buildNode(cluster, cat, nc.Sort.Input, path+".sort.input")
	if err != nil {
		return nil, err
	}
	collations := make([]trait.FieldCollation, len(nc.Sort.Collations))
	for i, cc := range nc.Sort.Collations {
		dir := trait.Ascending
		if cc.Direction != "" {
			if dir, err = trait.ParseDirection(cc.Direction); err != nil {
				return nil, errors.Wrapf(err, "%s.sort.collations[%d]", path, i)
			}
		}
		collations[i] = trait.NewFieldCollation(cc.Field, dir)
	}
	sort, err := planner.NewSortNode(cluster, traits, input, collations)
	if err != nil {
		return nil, errors.Wrapf(err, "%s.sort", path)
	}
	return sort, nil
}
