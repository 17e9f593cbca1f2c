package curp_test

import (
	"strings"
	"sync"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/curp/pkg/curp"
)

func samplePerson() curp.Person {
	return curp.Person{
		GivenNames:      "JOSE MARIA GUADALUPE",
		PaternalSurname: "HERNANDEZ",
		MaternalSurname: "GARCIA",
		BirthDate:       curp.BirthDate{Year: "90", Month: "05", Day: "15"},
		Sex:             curp.Male,
		State:           "JALISCO",
	}
}

// fixedRand always returns the same index.
type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func TestGenerate_KnownPerson(t *testing.T) {
	t.Parallel()

	code, err := curp.Generate(samplePerson())
	require.NoError(t, err)

	assert.Equal(t, curp.Length, utf8.RuneCountInString(code))
	assert.True(t, strings.HasPrefix(code, "HEGM900515HJCRRX"), code)
	assert.True(t, unicode.IsDigit(rune(code[16])), code)
	assert.True(t, strings.ContainsRune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", rune(code[17])), code)
	assert.True(t, curp.IsWellFormed(code), code)
}

func TestGenerate_InjectedRand(t *testing.T) {
	t.Parallel()

	g := curp.NewGenerator(curp.WithRand(fixedRand(7)))
	code, err := g.Generate(samplePerson())
	require.NoError(t, err)
	assert.Equal(t, "HEGM900515HJCRRX77", code)

	g = curp.NewGenerator(curp.WithRand(fixedRand(35)))
	code, err = g.Generate(samplePerson())
	require.NoError(t, err)
	assert.Equal(t, "HEGM900515HJCRRX5Z", code)
}

func TestGenerate_NilRandKeepsDefault(t *testing.T) {
	t.Parallel()

	g := curp.NewGenerator(curp.WithRand(nil))
	code, err := g.Generate(samplePerson())
	require.NoError(t, err)
	assert.Len(t, code, curp.Length)
}

func TestGenerate_SeededIsDeterministic(t *testing.T) {
	t.Parallel()

	a := curp.NewGenerator(curp.WithRand(curp.NewSeededRand(42)))
	b := curp.NewGenerator(curp.WithRand(curp.NewSeededRand(42)))

	for range 20 {
		codeA, err := a.Generate(samplePerson())
		require.NoError(t, err)
		codeB, err := b.Generate(samplePerson())
		require.NoError(t, err)
		assert.Equal(t, codeA, codeB)
	}
}

func TestGenerate_FixedPositionsAreStable(t *testing.T) {
	t.Parallel()

	first, err := curp.Generate(samplePerson())
	require.NoError(t, err)
	for range 50 {
		next, err := curp.Generate(samplePerson())
		require.NoError(t, err)
		assert.Equal(t, first[:16], next[:16])
	}
}

func TestGenerate_Female(t *testing.T) {
	t.Parallel()

	p := curp.Person{
		GivenNames:      "MA. ELENA",
		PaternalSurname: "LOPEZ",
		MaternalSurname: "PEREZ",
		BirthDate:       curp.BirthDate{Year: "00", Month: "02", Day: "29"},
		Sex:             curp.Female,
		State:           "CIUDAD DE MEXICO",
	}

	code, err := curp.NewGenerator(curp.WithRand(fixedRand(0))).Generate(p)
	require.NoError(t, err)
	assert.Equal(t, "LOPE000229MDFPRL00", code)
}

func TestGenerate_KeepsEnye(t *testing.T) {
	t.Parallel()

	p := curp.Person{
		GivenNames:      "ÑAÑO",
		PaternalSurname: "MUÑOZ",
		MaternalSurname: "IBARRA",
		BirthDate:       curp.BirthDate{Year: "85", Month: "11", Day: "30"},
		Sex:             curp.Male,
		State:           "MEXICO",
	}

	code, err := curp.NewGenerator(curp.WithRand(fixedRand(1))).Generate(p)
	require.NoError(t, err)
	assert.Equal(t, "MUIÑ851130HMCÑBX11", code)
	assert.Equal(t, curp.Length, utf8.RuneCountInString(code))
	assert.True(t, curp.IsWellFormed(code))
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*curp.Person)
		err    error
		field  string
	}{
		{"blank given names", func(p *curp.Person) { p.GivenNames = "   " }, curp.ErrEmptyField, curp.FieldGivenNames},
		{"blank paternal surname", func(p *curp.Person) { p.PaternalSurname = "" }, curp.ErrEmptyField, curp.FieldPaternalSurname},
		{"blank maternal surname", func(p *curp.Person) { p.MaternalSurname = "\t" }, curp.ErrEmptyField, curp.FieldMaternalSurname},
		{"unknown state", func(p *curp.Person) { p.State = "ATLANTIS" }, curp.ErrUnknownState, curp.FieldState},
		{"state not exact", func(p *curp.Person) { p.State = "Jalisco" }, curp.ErrUnknownState, curp.FieldState},
		{"unspecified sex", func(p *curp.Person) { p.Sex = curp.SexUnspecified }, curp.ErrInvalidSex, curp.FieldSex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := samplePerson()
			tt.mutate(&p)

			code, err := curp.Generate(p)
			require.ErrorIs(t, err, tt.err)
			assert.Empty(t, code)

			var fieldErr *curp.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	t.Parallel()

	generators := []*curp.Generator{
		curp.NewGenerator(),
		curp.NewGenerator(curp.WithRand(curp.NewSeededRand(1))),
	}

	for _, g := range generators {
		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 50 {
					code, err := g.Generate(samplePerson())
					assert.NoError(t, err)
					assert.True(t, strings.HasPrefix(code, "HEGM900515HJCRRX"))
				}
			}()
		}
		wg.Wait()
	}
}

func TestIsWellFormed(t *testing.T) {
	t.Parallel()

	assert.True(t, curp.IsWellFormed("HEGM900515HJCRRX07"))
	assert.True(t, curp.IsWellFormed("HEGM900515MJCRRX0A"))
	assert.False(t, curp.IsWellFormed("HEGM900515XJCRRX07"), "bad sex letter")
	assert.False(t, curp.IsWellFormed("HEGM900515HJCRRX0"), "too short")
	assert.False(t, curp.IsWellFormed("hegm900515hjcrrx07"), "lower case")
	assert.False(t, curp.IsWellFormed("HEGM9005151JCRRX07"))
	assert.False(t, curp.IsWellFormed(""))
}
