// Package sanitizer normalizes free-text person data before it reaches the
// CURP rules.
//
// Form input is messy: stray spaces, lower case, digits typed into a name
// field, accents that may or may not be present. The helpers here are small,
// stateless functions that can be chained with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.CollapseSpaces,
//	    sanitizer.ToUpper,
//	)
//
//	clean("  josé   maría ") // "JOSÉ MARÍA"
//
// Two ready-made pipelines cover the common cases:
//
//   - PersonName keeps accents and Ñ, because the letter rules depend on them.
//   - LookupKey strips diacritics (via golang.org/x/text) for matching table
//     keys such as state names.
//
// MaskString and MaskCode hide personal data before it is logged.
package sanitizer
