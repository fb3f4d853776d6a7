package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything, an
// empty pattern nothing, anything else matches names it prefixes. Patterns
// may list alternatives separated by commas.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	for _, alternative := range strings.Split(pattern, ",") {
		alternative = strings.TrimSpace(alternative)
		if alternative == "*" || (alternative != "" && strings.HasPrefix(name, alternative)) {
			return true
		}
	}
	return false
}
