package converter

import (
	"context"

	"github.com/viant/paramconv/param/types"
)

// ExamplesTable hands the whole text to a table factory.
type ExamplesTable struct {
	factory TableFactory
}

// NewExamplesTable creates an examples table converter.
func NewExamplesTable(factory TableFactory) *ExamplesTable {
	return &ExamplesTable{factory: factory}
}

func (c *ExamplesTable) Name() string { return "ExamplesTable" }

func (c *ExamplesTable) Accept(t *types.Type) bool {
	return t.IsScalar(types.ExamplesTable)
}

func (c *ExamplesTable) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	table, err := c.factory.NewTable(ctx, value)
	if err != nil {
		return nil, NewError("", value, t, err)
	}
	return table, nil
}

// TableRows maps table rows onto the Go binding of a Rows marked type.
// Parameterized targets receive every row, scalar targets the first one.
type TableRows struct {
	factory TableFactory
}

// NewTableRows creates a row mapping converter.
func NewTableRows(factory TableFactory) *TableRows {
	return &TableRows{factory: factory}
}

func (c *TableRows) Name() string { return "ExamplesTableParameters" }

func (c *TableRows) Accept(t *types.Type) bool {
	return acceptsMarked(t, types.Rows)
}

func (c *TableRows) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	table, err := c.factory.NewTable(ctx, value)
	if err != nil {
		return nil, NewError("", value, t, err)
	}
	elem := elementOf(t)
	if elem == nil {
		return nil, NewError("missing row type", value, t, nil)
	}
	rows, err := table.RowsAs(elem.GoType())
	if err != nil {
		return nil, NewError("", value, t, err)
	}
	if t.Kind() == types.KindParameterized {
		return rows, nil
	}
	if len(rows) == 0 {
		return nil, NewError("", value, t, ErrNoRows)
	}
	return rows[0], nil
}
