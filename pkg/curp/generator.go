package curp

import "strings"

const (
	digits       = "0123456789"
	alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Length is the number of characters in a code.
const Length = 18

// Generator assembles codes. The zero value is not usable; call NewGenerator.
type Generator struct {
	rnd Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the random source used for the last two characters.
// A nil source is ignored.
func WithRand(r Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// NewGenerator creates a Generator backed by the global random source unless
// WithRand says otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rnd: globalRand{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate builds a code with the default generator.
func Generate(p Person) (string, error) {
	return defaultGenerator.Generate(p)
}

// Generate builds the 18-character code for p.
// Date plausibility is not checked here; validate the date first.
func (g *Generator) Generate(p Person) (string, error) {
	given := strings.TrimSpace(p.GivenNames)
	paternal := strings.TrimSpace(p.PaternalSurname)
	maternal := strings.TrimSpace(p.MaternalSurname)

	switch {
	case given == "":
		return "", fieldError(FieldGivenNames, ErrEmptyField)
	case paternal == "":
		return "", fieldError(FieldPaternalSurname, ErrEmptyField)
	case maternal == "":
		return "", fieldError(FieldMaternalSurname, ErrEmptyField)
	}

	sex, ok := p.Sex.Letter()
	if !ok {
		return "", fieldError(FieldSex, ErrInvalidSex)
	}

	state, ok := StateCode(p.State)
	if !ok {
		return "", fieldError(FieldState, ErrUnknownState)
	}

	name := EffectiveGivenName(given)
	paternalInitial, paternalRest := firstRune(paternal)
	maternalInitial, maternalRest := firstRune(maternal)
	nameInitial, nameRest := firstRune(name)

	var b strings.Builder
	b.Grow(Length * 2)
	b.WriteRune(paternalInitial)
	b.WriteRune(FirstVowel(paternalRest))
	b.WriteRune(maternalInitial)
	b.WriteRune(nameInitial)
	b.WriteString(p.BirthDate.String())
	b.WriteRune(sex)
	b.WriteString(state)
	b.WriteRune(FirstInnerConsonant(paternalRest))
	b.WriteRune(FirstInnerConsonant(maternalRest))
	b.WriteRune(FirstInnerConsonant(nameRest))
	b.WriteByte(digits[g.rnd.IntN(len(digits))])
	b.WriteByte(alphanumeric[g.rnd.IntN(len(alphanumeric))])

	return b.String(), nil
}
