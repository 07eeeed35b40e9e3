// Package normalize canonicalizes free-text state and district names
// against static alias tables. All tables are built once at init and never
// written afterwards, so lookups are safe from any goroutine. Both entry
// points fail closed: blank or unusable input maps to Unknown, which the
// pipeline filters out before aggregation.
package normalize

import "strings"

// Unknown is the fail-closed bucket for names that cannot be resolved.
// Records carrying it are dropped by the pipeline rather than aggregated
// under an arbitrary key.
const Unknown = "Unknown"

// Source rows occasionally carry a city (or a bare number) in the state
// column. These are mis-filings, not spelling variants: the record belongs
// to the city's actual state. Keys are matched case-insensitively.
var cityToState = map[string]string{
	"JAIPUR":              "Rajasthan",
	"NAGPUR":              "Maharashtra",
	"DARBHANGA":           "Bihar",
	"MADANAPALLE":         "Andhra Pradesh",
	"PUTTENAHALLI":        "Karnataka",
	"RAJA ANNAMALAI PURAM": "Tamil Nadu",
	"100000":              Unknown, // numeric junk seen in one source drop
}

// Spelling, spacing and casing variants plus legacy names (old union
// territory names, pre-rename forms) mapped to the current canonical state.
var stateAliases = map[string]string{
	"westbengal":   "West Bengal",
	"west bengal":  "West Bengal",
	"west bangal":  "West Bengal",
	"west bengli":  "West Bengal",
	"orissa":       "Odisha",
	"odisha":       "Odisha",
	"chatisgarh":   "Chhattisgarh",
	"chhattisgarhh": "Chhattisgarh",
	"chhattisgarh": "Chhattisgarh",

	"the dadra and nagar haveli and daman and diu": "Dadra and Nagar Haveli and Daman and Diu",
	"dadra & nagar haveli":                         "Dadra and Nagar Haveli and Daman and Diu",
	"daman & diu":                                  "Dadra and Nagar Haveli and Daman and Diu",
	"dadra and nagar haveli":                       "Dadra and Nagar Haveli and Daman and Diu",
	"daman and diu":                                "Dadra and Nagar Haveli and Daman and Diu",
	"jammu & kashmir":                              "Jammu and Kashmir",
	"jammu and kashmir":                            "Jammu and Kashmir",
	"andaman & nicobar islands":                    "Andaman and Nicobar Islands",
	"uttaranchal":                                  "Uttarakhand",
	"pondicherry":                                  "Puducherry",
}

// State canonicalizes a raw state name. Blank input maps to Unknown. The
// function is idempotent: canonical output resolves to itself.
func State(raw string) string {
	name := collapseSpaces(strings.TrimSpace(raw))
	if name == "" {
		return Unknown
	}

	if state, ok := cityToState[strings.ToUpper(name)]; ok {
		return state
	}
	if state, ok := stateAliases[strings.ToLower(name)]; ok {
		return state
	}

	if name == strings.ToLower(name) {
		return titleCase(name)
	}
	return name
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// titleCase uppercases the first letter of each space-separated word,
// lowercasing the rest. strings.Title is unsuitable here: it touches
// letters after punctuation inside words.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
