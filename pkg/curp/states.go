package curp

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/curp/pkg/sanitizer"
)

// stateCodes maps upper-case state names without accents to their two-letter code.
// "MEXICO" is the State of Mexico; Mexico City is "CIUDAD DE MEXICO".
var stateCodes = map[string]string{
	"AGUASCALIENTES":      "AG",
	"BAJA CALIFORNIA":     "BC",
	"BAJA CALIFORNIA SUR": "BS",
	"CAMPECHE":            "CC",
	"COAHUILA":            "CL",
	"COLIMA":              "CM",
	"CHIAPAS":             "CS",
	"CHIHUAHUA":           "CH",
	"CIUDAD DE MEXICO":    "DF",
	"DURANGO":             "DG",
	"GUANAJUATO":          "GT",
	"GUERRERO":            "GR",
	"HIDALGO":             "HG",
	"JALISCO":             "JC",
	"MEXICO":              "MC",
	"MICHOACAN":           "MN",
	"MORELOS":             "MS",
	"NAYARIT":             "NT",
	"NUEVO LEON":          "NL",
	"OAXACA":              "OC",
	"PUEBLA":              "PL",
	"QUERETARO":           "QT",
	"QUINTANA ROO":        "QR",
	"SAN LUIS POTOSI":     "SP",
	"SINALOA":             "SL",
	"SONORA":              "SR",
	"TABASCO":             "TC",
	"TAMAULIPAS":          "TS",
	"TLAXCALA":            "TL",
	"VERACRUZ":            "VZ",
	"YUCATAN":             "YN",
	"ZACATECAS":           "ZS",
}

// stateAliases covers names people commonly type instead of the table key.
var stateAliases = map[string]string{
	"ESTADO DE MEXICO":                "MEXICO",
	"EDO DE MEXICO":                   "MEXICO",
	"EDOMEX":                          "MEXICO",
	"CDMX":                            "CIUDAD DE MEXICO",
	"DISTRITO FEDERAL":                "CIUDAD DE MEXICO",
	"COAHUILA DE ZARAGOZA":            "COAHUILA",
	"MICHOACAN DE OCAMPO":             "MICHOACAN",
	"VERACRUZ DE IGNACIO DE LA LLAVE": "VERACRUZ",
}

// StateCodes returns a copy of the state table.
func StateCodes() map[string]string {
	return maps.Clone(stateCodes)
}

// States returns the table keys in alphabetical order.
func States() []string {
	return slices.Sorted(maps.Keys(stateCodes))
}

// StateCode returns the two-letter code for an exact table key.
func StateCode(state string) (string, bool) {
	code, ok := stateCodes[state]
	return code, ok
}

// ResolveState maps loosely typed input ("Querétaro", "cdmx", "JC") to a table key.
// Matching ignores case, accents and extra spaces.
func ResolveState(input string) (string, bool) {
	key := sanitizer.LookupKey(input)
	if key == "" {
		return "", false
	}
	if _, ok := stateCodes[key]; ok {
		return key, true
	}
	if name, ok := stateAliases[key]; ok {
		return name, true
	}
	if len(key) == 2 {
		for name, code := range stateCodes {
			if code == key {
				return name, true
			}
		}
	}
	return "", false
}
