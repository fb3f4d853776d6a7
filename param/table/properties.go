package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Property names understood by the parser.
const (
	PropertyTransformer     = "transformer"
	PropertyHeaderSeparator = "headerSeparator"
	PropertyValueSeparator  = "valueSeparator"
	PropertyCommentPrefix   = "commentPrefix"
	PropertyTrim            = "trim"
	PropertyReplacing       = "replacing"
	PropertyReplacement     = "replacement"
)

const (
	defaultSeparator     = "|"
	defaultCommentPrefix = "|--"
)

// Properties are the key/value pairs of a table's leading {...} block.
type Properties map[string]string

// Get returns the property or fallback when absent.
func (p Properties) Get(key, fallback string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return fallback
}

// Bool returns a boolean property.
func (p Properties) Bool(key string, fallback bool) bool {
	v, ok := p[key]
	if !ok {
		return fallback
	}
	ret, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return ret
}

// splitProperties detaches a leading {k=v, ...} block from text.
func splitProperties(text string) (Properties, string, error) {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	if !strings.HasPrefix(trimmed, "{") {
		return Properties{}, text, nil
	}
	end := strings.IndexByte(trimmed, '}')
	if end == -1 {
		return nil, "", fmt.Errorf("unterminated table properties: %q", firstLine(trimmed))
	}
	ret := Properties{}
	for _, pair := range strings.Split(trimmed[1:end], ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, "", fmt.Errorf("invalid table property %q", strings.TrimSpace(pair))
		}
		ret[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return ret, trimmed[end+1:], nil
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx != -1 {
		return text[:idx]
	}
	return text
}
