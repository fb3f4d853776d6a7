package table

import (
	"fmt"
	"strings"
)

// Parse builds a table from inline text. Transformers named by the
// transformer property are looked up with lookup.
func Parse(text string, lookup func(name string) (Transformer, bool)) (*Table, error) {
	properties, body, err := splitProperties(text)
	if err != nil {
		return nil, err
	}
	headerSeparator := properties.Get(PropertyHeaderSeparator, defaultSeparator)
	valueSeparator := properties.Get(PropertyValueSeparator, defaultSeparator)
	commentPrefix := properties.Get(PropertyCommentPrefix, defaultCommentPrefix)
	trim := properties.Bool(PropertyTrim, true)

	var grid [][]string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		separator := valueSeparator
		if len(grid) == 0 {
			separator = headerSeparator
		}
		grid = append(grid, splitCells(line, separator, trim))
	}

	if name, ok := properties[PropertyTransformer]; ok && name != "" {
		transformer, ok := lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown table transformer %q", name)
		}
		if grid, err = transformer(grid, properties); err != nil {
			return nil, fmt.Errorf("failed to apply table transformer %q: %w", name, err)
		}
	}

	ret := &Table{properties: properties}
	if len(grid) == 0 {
		return ret, nil
	}
	ret.headers = grid[0]
	for _, cells := range grid[1:] {
		row := make([]string, len(ret.headers))
		copy(row, cells)
		ret.rows = append(ret.rows, row)
	}
	return ret, nil
}

func splitCells(line, separator string, trim bool) []string {
	line = strings.TrimPrefix(line, separator)
	line = strings.TrimSuffix(line, separator)
	cells := strings.Split(line, separator)
	if trim {
		for i, cell := range cells {
			cells[i] = strings.TrimSpace(cell)
		}
	}
	return cells
}
