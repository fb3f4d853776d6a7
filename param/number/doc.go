// Package number parses locale formatted numbers and canonicalizes them for
// exact decimal construction. Locale punctuation is resolved from BCP 47 tags
// through golang.org/x/text/language.
package number
