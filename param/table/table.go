package table

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table is a parsed examples table.
type Table struct {
	properties Properties
	headers    []string
	rows       [][]string
}

// Properties returns the table properties.
func (t *Table) Properties() Properties { return t.properties }

// Headers returns the column names.
func (t *Table) Headers() []string { return t.headers }

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Row returns the row at index keyed by header.
func (t *Table) Row(index int) map[string]string {
	ret := make(map[string]string, len(t.headers))
	for i, header := range t.headers {
		ret[header] = t.rows[index][i]
	}
	return ret
}

// Rows returns every row keyed by header.
func (t *Table) Rows() []map[string]string {
	ret := make([]map[string]string, len(t.rows))
	for i := range t.rows {
		ret[i] = t.Row(i)
	}
	return ret
}

// RowsAs maps each row onto a new value of rowType, decoding a YAML mapping
// node built from the row so field names follow yaml tags and cell text is
// resolved into numbers, booleans or strings as the field requires. Pointer
// row types yield pointers; a nil rowType yields map[string]string rows.
func (t *Table) RowsAs(rowType reflect.Type) ([]interface{}, error) {
	ret := make([]interface{}, 0, len(t.rows))
	for i := range t.rows {
		if rowType == nil {
			ret = append(ret, t.Row(i))
			continue
		}
		target := rowType
		isPointer := target.Kind() == reflect.Pointer
		if isPointer {
			target = target.Elem()
		}
		value := reflect.New(target)
		if err := t.node(i).Decode(value.Interface()); err != nil {
			return nil, fmt.Errorf("failed to map row %d onto %v: %w", i, rowType, err)
		}
		if isPointer {
			ret = append(ret, value.Interface())
			continue
		}
		ret = append(ret, value.Elem().Interface())
	}
	return ret, nil
}

func (t *Table) node(index int) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, header := range t.headers {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: header},
			scalar(t.rows[index][i]),
		)
	}
	return node
}

// scalar leaves the tag unresolved for plain values so yaml infers it; an
// empty cell decodes as the zero value. Text yaml would read as null or as
// an indicator (such as "~" or "*ref") is kept as a string.
func scalar(value string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	if value == "" {
		return node
	}
	if strings.ContainsAny(value[:1], "~[{!&*#|>'\"%@`") || strings.EqualFold(value, "null") {
		node.Tag = "!!str"
		node.Style = yaml.DoubleQuotedStyle
	}
	return node
}

// String renders the table back to pipe separated text.
func (t *Table) String() string {
	builder := strings.Builder{}
	writeLine := func(cells []string) {
		builder.WriteString("|")
		for _, cell := range cells {
			builder.WriteString(cell)
			builder.WriteString("|")
		}
		builder.WriteString("\n")
	}
	writeLine(t.headers)
	for _, row := range t.rows {
		writeLine(row)
	}
	return builder.String()
}
