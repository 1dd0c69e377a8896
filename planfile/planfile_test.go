package planfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mit.edu/dsg/relopt/common"
	"mit.edu/dsg/relopt/planner"
	"mit.edu/dsg/relopt/trait"
)

const empPlan = `
tables:
  - name: emp
    columns:
      - {name: id, type: int}
      - {name: name, type: string}
      - {name: age, type: int}
plan:
  sort:
    collations:
      - {field: 2, direction: desc}
      - {field: 0}
    input:
      scan: {table: emp}
`

func load(t *testing.T, doc string) *File {
	t.Helper()
	f, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	return f
}

func TestBuildSortOverScan(t *testing.T) {
	root, cat, err := load(t, empPlan).Build(planner.NewCluster(nil))
	require.NoError(t, err)
	require.Len(t, cat.Tables(), 1)

	sort, ok := root.(*planner.SortNode)
	require.True(t, ok)
	assert.Equal(t, []trait.FieldCollation{
		trait.NewFieldCollation(2, trait.Descending),
		trait.NewFieldCollation(0, trait.Ascending),
	}, sort.Collations())
	assert.Equal(t,
		"Sort.NONE.[](child=[SeqScan.NONE.[](table=[emp])], sort0=[$2], sort1=[$0], dir0=[DESC], dir1=[ASC])",
		planner.Digest(root))
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code common.ErrorCode
	}{
		{
			name: "field out of range",
			doc: `
tables: [{name: t, columns: [{name: a, type: int}]}]
plan: {sort: {collations: [{field: 5}], input: {scan: {table: t}}}}`,
			code: common.FieldIndexOutOfRangeError,
		},
		{
			name: "unknown table",
			doc:  `plan: {scan: {table: missing}}`,
			code: common.NoSuchObjectError,
		},
		{
			name: "duplicate table",
			doc: `
tables: [{name: t, columns: []}, {name: t, columns: []}]
plan: {scan: {table: t}}`,
			code: common.DuplicateObjectError,
		},
		{
			name: "unknown type",
			doc: `
tables: [{name: t, columns: [{name: a, type: decimal}]}]
plan: {scan: {table: t}}`,
			code: common.InvalidConfigError,
		},
		{
			name: "two operators",
			doc: `
tables: [{name: t, columns: []}]
plan: {scan: {table: t}, sort: {input: {scan: {table: t}}}}`,
			code: common.InvalidConfigError,
		},
		{
			name: "no operator",
			doc:  `plan: {}`,
			code: common.InvalidConfigError,
		},
		{
			name: "sort without input",
			doc:  `plan: {sort: {collations: []}}`,
			code: common.InvalidConfigError,
		},
		{
			name: "physical convention",
			doc: `
tables: [{name: t, columns: []}]
plan: {convention: ITERATOR, scan: {table: t}}`,
			code: common.InvalidConfigError,
		},
		{
			name: "bad direction",
			doc: `
tables: [{name: t, columns: [{name: a, type: int}]}]
plan: {sort: {collations: [{field: 0, direction: up}], input: {scan: {table: t}}}}`,
			code: common.InvalidConfigError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := load(t, tt.doc).Build(planner.NewCluster(nil))
			require.Error(t, err)
			assert.True(t, common.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestConventionIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"NONE", "none", "None"} {
		t.Run(name, func(t *testing.T) {
			doc := "tables: [{name: t, columns: [{name: a, type: int}]}]\n" +
				"plan: {convention: " + name + ", scan: {table: t}}\n"
			root, _, err := load(t, doc).Build(planner.NewCluster(nil))
			require.NoError(t, err)
			assert.True(t, root.TraitSet().Comprises(trait.None))
		})
	}

	_, _, err := load(t, "tables: [{name: t, columns: []}]\nplan: {convention: iterator, scan: {table: t}}\n").
		Build(planner.NewCluster(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "convention ITERATOR")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("plan: {scan: {table: t}}\nextra: 1\n"))
	assert.Error(t, err)
}
