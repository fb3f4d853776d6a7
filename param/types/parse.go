package types

import (
	"fmt"
	"strings"
)

// Parse builds a Type from a textual expression. Supported forms:
//
//	int
//	List<int>
//	SortedSet<decimal.Decimal>
//	enum Color{RED,GREEN,BLUE}
//	@json Payload
//	List<@rows Person>
//
// Parse exists for command line use; programmatic callers should construct
// descriptors directly.
func Parse(expr string) (*Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty type expression")
	}
	var marks Mark
	for strings.HasPrefix(expr, "@") {
		idx := strings.IndexAny(expr, " \t")
		if idx == -1 {
			return nil, fmt.Errorf("missing type after mark in %q", expr)
		}
		switch mark := expr[1:idx]; mark {
		case "json":
			marks |= JSON
		case "rows":
			marks |= Rows
		default:
			return nil, fmt.Errorf("unsupported mark %q", mark)
		}
		expr = strings.TrimSpace(expr[idx:])
	}

	if strings.HasPrefix(expr, "enum ") {
		return parseEnum(strings.TrimSpace(expr[len("enum "):]))
	}

	if open := strings.Index(expr, "<"); open != -1 {
		if !strings.HasSuffix(expr, ">") {
			return nil, fmt.Errorf("unbalanced type expression %q", expr)
		}
		raw := strings.TrimSpace(expr[:open])
		if raw == "" {
			return nil, fmt.Errorf("missing raw type in %q", expr)
		}
		elem, err := Parse(expr[open+1 : len(expr)-1])
		if err != nil {
			return nil, fmt.Errorf("failed to parse element of %q: %w", raw, err)
		}
		return Parameterized(raw, elem, WithMarks(marks)), nil
	}
	if strings.ContainsAny(expr, "<>{}, ") {
		return nil, fmt.Errorf("invalid type id %q", expr)
	}
	return Scalar(expr, WithMarks(marks)), nil
}

func parseEnum(expr string) (*Type, error) {
	open := strings.Index(expr, "{")
	if open == -1 || !strings.HasSuffix(expr, "}") {
		return nil, fmt.Errorf("enum expression %q must have form Name{A,B}", expr)
	}
	id := strings.TrimSpace(expr[:open])
	if id == "" {
		return nil, fmt.Errorf("missing enum name in %q", expr)
	}
	var names []string
	for _, name := range strings.Split(expr[open+1:len(expr)-1], ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return Enumeration(id, Names(names...)...), nil
}
