// Package curp assembles the CURP (Clave Única de Registro de Población), the
// 18-character population registry code used in Mexico, from a person's name,
// surnames, birth date, sex and state of birth.
//
// # Architecture
//
// The package is a set of small pure helpers plus a Generator that stitches
// their results together in a fixed positional layout:
//
//	H E G M 9 0 0 5 1 5 H J C R R X 0 7
//	| | | | +---------+ | +-+ | | | | |
//	| | | |   date    |  st | | | | random alphanumeric
//	| | | given name   sex    | | | random digit
//	| | maternal initial      | | given name inner consonant
//	| first inner vowel       | maternal inner consonant
//	paternal initial          paternal inner consonant
//
// The lookup tables (state codes and common given names) are package-private
// and read-only, so every function is safe for concurrent use. The only shared
// mutable resource is the random source behind the last two characters; the
// default source is goroutine safe and NewSeededRand guards its generator with
// a mutex.
//
// # Usage
//
//	import "github.com/dmitrymomot/curp/pkg/curp"
//
//	code, err := curp.Generate(curp.Person{
//		GivenNames:      "JOSE MARIA GUADALUPE",
//		PaternalSurname: "HERNANDEZ",
//		MaternalSurname: "GARCIA",
//		BirthDate:       curp.BirthDate{Year: "90", Month: "05", Day: "15"},
//		Sex:             curp.Male,
//		State:           "JALISCO",
//	})
//	// code == "HEGM900515HJCRRX" + two random characters
//
// Inputs must already be normalized: upper case, trimmed, and the state given
// exactly as one of the table keys. ResolveState and the sanitizer package
// help with that; date plausibility is checked beforehand with the
// datevalidator package.
//
// For reproducible output (tests, fixtures) inject a seeded source:
//
//	g := curp.NewGenerator(curp.WithRand(curp.NewSeededRand(42)))
//
// # Known Limitation
//
// The last two characters are random (a digit followed by a digit or letter).
// They are not the official homonymy and verification characters, so codes
// produced here are structurally valid but will not pass a registry check.
//
// # Error Handling
//
// Generate never returns a partial code. Failures are reported with sentinel
// errors that can be matched with errors.Is:
//
//   - ErrEmptyField: a name or surname is blank. The error is a *FieldError
//     naming the field.
//   - ErrUnknownState: the state is not a table key.
//   - ErrInvalidSex: the sex is neither Male nor Female.
package curp
