// Package validator provides small, declarative rules for checking form input
// before it reaches the CURP rules.
//
// A Rule pairs a boolean Check with translation-friendly error metadata. Rules
// are evaluated with Apply, which collects every failure into a
// ValidationErrors slice. ValidationErrors implements error, so a handler can
// return one value and still report every bad field at once.
//
// # Architecture
//
// Rules are grouped by family (`string_rules.go` for presence and length,
// `form_rules.go` for name characters and choices). Every
// exported constructor returns a Rule value; there is no global state, so
// the package is goroutine safe.
//
// Lengths are counted in runes: "MUÑOZ" is five characters long.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("given_names", in.GivenNames),
//	    validator.PersonName("given_names", in.GivenNames),
//	    validator.MaxLen("given_names", in.GivenNames, 50),
//	    validator.OneOfFold("sex", in.Sex, []string{"H", "M"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for field, key := range verrs.Keys() {
//	        // translate key for field
//	    }
//	}
//
// # Error Handling
//
// Use IsValidationError or ExtractValidationErrors to tell input problems
// apart from other failures. Each ValidationError carries a TranslationKey
// (for example "validation.required") and the values needed to render it.
package validator
