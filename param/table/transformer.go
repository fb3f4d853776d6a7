package table

import (
	"fmt"
	"strings"
)

// Names of the built-in transformers.
const (
	FromLandscape = "FROM_LANDSCAPE"
	Replacing     = "REPLACING"
)

// Transformer rewrites the parsed cell grid (header row first) before rows
// are built.
type Transformer func(grid [][]string, properties Properties) ([][]string, error)

// fromLandscape transposes a table written with one header per line.
func fromLandscape(grid [][]string, _ Properties) ([][]string, error) {
	width := 0
	for _, line := range grid {
		if len(line) > width {
			width = len(line)
		}
	}
	ret := make([][]string, width)
	for i := range ret {
		ret[i] = make([]string, len(grid))
		for j, line := range grid {
			if i < len(line) {
				ret[i][j] = line[i]
			}
		}
	}
	return ret, nil
}

// replacing substitutes the replacing property with replacement in every cell.
func replacing(grid [][]string, properties Properties) ([][]string, error) {
	target, ok := properties[PropertyReplacing]
	if !ok || target == "" {
		return nil, fmt.Errorf("%s transformer requires %q property", Replacing, PropertyReplacing)
	}
	replacement := properties.Get(PropertyReplacement, "")
	for _, line := range grid {
		for i, cell := range line {
			line[i] = strings.ReplaceAll(cell, target, replacement)
		}
	}
	return grid, nil
}
