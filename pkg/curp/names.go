package curp

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/curp/pkg/sanitizer"
)

// commonGivenNames are generic first names skipped in favour of the next
// given name. "JOSE MARIA" can never equal a single token; it stays listed
// because callers use IsCommonGivenName on whole fields too.
var commonGivenNames = []string{"JOSE", "MARIA", "JOSE MARIA", "MA", "MA.", "J", "J."}

// CommonGivenNamePrefixes returns the generic given names skipped when a
// person has more than one given name.
func CommonGivenNamePrefixes() []string {
	return slices.Clone(commonGivenNames)
}

// IsCommonGivenName reports whether name is one of the skipped generic names.
// Case and accents are ignored, so "José" matches JOSE.
func IsCommonGivenName(name string) bool {
	return slices.Contains(commonGivenNames, sanitizer.LookupKey(name))
}

// EffectiveGivenName picks the given name used for the code.
// When the first name is generic and a second one exists, the second is used.
// At most one name is skipped, so "JOSE MARIA GUADALUPE" yields "MARIA".
// The returned token keeps its accents: "JOSÉ MARÍA" yields "MARÍA".
func EffectiveGivenName(givenNames string) string {
	tokens := strings.Fields(givenNames)
	switch {
	case len(tokens) == 0:
		return ""
	case len(tokens) > 1 && IsCommonGivenName(tokens[0]):
		return tokens[1]
	default:
		return tokens[0]
	}
}
