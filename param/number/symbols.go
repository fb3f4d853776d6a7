package number

import (
	"fmt"

	"golang.org/x/text/language"
)

// Symbols holds the locale specific punctuation used by numbers.
type Symbols struct {
	Decimal  rune
	Grouping rune
	Minus    rune
}

// Neutral symbols, also the canonical form produced by Canonicalize.
var Neutral = Symbols{Decimal: '.', Grouping: ',', Minus: '-'}

var (
	commaDecimal = Symbols{Decimal: ',', Grouping: '.', Minus: '-'}
	spaceGroup   = Symbols{Decimal: ',', Grouping: '\u00a0', Minus: '-'}
	nordic       = Symbols{Decimal: ',', Grouping: '\u00a0', Minus: '\u2212'}
	swiss        = Symbols{Decimal: '.', Grouping: '\u2019', Minus: '-'}
)

// byLanguage groups languages by their number punctuation. Languages not
// listed use Neutral.
var byLanguage = map[string]Symbols{
	"de": commaDecimal, "es": commaDecimal, "it": commaDecimal, "nl": commaDecimal,
	"pt": commaDecimal, "id": commaDecimal, "tr": commaDecimal, "da": commaDecimal,
	"el": commaDecimal, "ro": commaDecimal, "hr": commaDecimal, "sl": commaDecimal,
	"sr": commaDecimal, "vi": commaDecimal,
	"fr": spaceGroup, "ru": spaceGroup, "pl": spaceGroup, "cs": spaceGroup,
	"sk": spaceGroup, "uk": spaceGroup, "hu": spaceGroup, "bg": spaceGroup,
	"lt": spaceGroup, "lv": spaceGroup, "et": spaceGroup,
	"sv": nordic, "fi": nordic, "nb": nordic, "no": nordic,
}

// byRegion overrides language defaults for specific regions.
var byRegion = map[string]Symbols{
	"de-CH": swiss, "it-CH": swiss, "fr-CH": swiss,
}

// SymbolsFor resolves number symbols for a BCP 47 locale such as "en",
// "de-DE" or "fr_FR".
func SymbolsFor(locale string) (Symbols, language.Tag, error) {
	if locale == "" {
		return Neutral, language.English, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Symbols{}, language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	base, _ := tag.Base()
	region, confidence := tag.Region()
	if confidence == language.Exact {
		if symbols, ok := byRegion[base.String()+"-"+region.String()]; ok {
			return symbols, tag, nil
		}
	}
	if symbols, ok := byLanguage[base.String()]; ok {
		return symbols, tag, nil
	}
	return Neutral, tag, nil
}

// isGrouping reports whether r acts as a grouping separator. Locales that
// group with a no-break space also accept the plain and narrow variants.
func (s Symbols) isGrouping(r rune) bool {
	if r == s.Grouping {
		return true
	}
	if s.Grouping == '\u00a0' {
		return r == ' ' || r == '\u202f'
	}
	return false
}

func (s Symbols) isMinus(r rune) bool {
	return r == s.Minus || r == '-'
}
