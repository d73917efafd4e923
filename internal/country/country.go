package country

import "strings"

// Flag resolves a free-text country name to its emoji flag. ok is false
// for names the tables do not know; callers fall back to plain text.
func Flag(name string) (flag string, ok bool) {
	key := normalize(name)
	if key == "" {
		return "", false
	}
	if canonical, found := aliases[key]; found {
		key = canonical
	}
	code, found := iso2[key]
	if !found {
		return "", false
	}
	return emoji(code), true
}

// normalize lowers the name and strips the punctuation and spacing
// variance the CRM free-text field produces.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer(".", "", ",", "").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

// emoji builds a flag from the two regional indicator symbols that
// correspond to the ISO-3166 alpha-2 code.
func emoji(code string) string {
	r := []rune(code)
	return string(rune(0x1F1E6+r[0]-'A')) + string(rune(0x1F1E6+r[1]-'A'))
}

// iso2 maps normalized canonical country names to ISO-3166 alpha-2
// codes. The selection follows where competition sign-ups actually come
// from rather than the full ISO list.
var iso2 = map[string]string{
	"albania":                "AL",
	"algeria":                "DZ",
	"argentina":              "AR",
	"armenia":                "AM",
	"australia":              "AU",
	"austria":                "AT",
	"azerbaijan":             "AZ",
	"bahrain":                "BH",
	"bangladesh":             "BD",
	"belarus":                "BY",
	"belgium":                "BE",
	"bolivia":                "BO",
	"bosnia and herzegovina": "BA",
	"botswana":               "BW",
	"brazil":                 "BR",
	"bulgaria":               "BG",
	"cameroon":               "CM",
	"canada":                 "CA",
	"chile":                  "CL",
	"china":                  "CN",
	"colombia":               "CO",
	"costa rica":             "CR",
	"croatia":                "HR",
	"cyprus":                 "CY",
	"czechia":                "CZ",
	"denmark":                "DK",
	"dominican republic":     "DO",
	"ecuador":                "EC",
	"egypt":                  "EG",
	"estonia":                "EE",
	"ethiopia":               "ET",
	"finland":                "FI",
	"france":                 "FR",
	"georgia":                "GE",
	"germany":                "DE",
	"ghana":                  "GH",
	"greece":                 "GR",
	"hong kong":              "HK",
	"hungary":                "HU",
	"iceland":                "IS",
	"india":                  "IN",
	"indonesia":              "ID",
	"iran":                   "IR",
	"iraq":                   "IQ",
	"ireland":                "IE",
	"israel":                 "IL",
	"italy":                  "IT",
	"ivory coast":            "CI",
	"jamaica":                "JM",
	"japan":                  "JP",
	"jordan":                 "JO",
	"kazakhstan":             "KZ",
	"kenya":                  "KE",
	"kosovo":                 "XK",
	"kuwait":                 "KW",
	"latvia":                 "LV",
	"lebanon":                "LB",
	"lithuania":              "LT",
	"luxembourg":             "LU",
	"malaysia":               "MY",
	"malta":                  "MT",
	"mexico":                 "MX",
	"moldova":                "MD",
	"montenegro":             "ME",
	"morocco":                "MA",
	"namibia":                "NA",
	"nepal":                  "NP",
	"netherlands":            "NL",
	"new zealand":            "NZ",
	"nigeria":                "NG",
	"north macedonia":        "MK",
	"norway":                 "NO",
	"oman":                   "OM",
	"pakistan":               "PK",
	"panama":                 "PA",
	"paraguay":               "PY",
	"peru":                   "PE",
	"philippines":            "PH",
	"poland":                 "PL",
	"portugal":               "PT",
	"puerto rico":            "PR",
	"qatar":                  "QA",
	"romania":                "RO",
	"russia":                 "RU",
	"saudi arabia":           "SA",
	"senegal":                "SN",
	"serbia":                 "RS",
	"singapore":              "SG",
	"slovakia":               "SK",
	"slovenia":               "SI",
	"south africa":           "ZA",
	"south korea":            "KR",
	"spain":                  "ES",
	"sri lanka":              "LK",
	"sweden":                 "SE",
	"switzerland":            "CH",
	"taiwan":                 "TW",
	"tanzania":               "TZ",
	"thailand":               "TH",
	"trinidad and tobago":    "TT",
	"tunisia":                "TN",
	"turkey":                 "TR",
	"uganda":                 "UG",
	"ukraine":                "UA",
	"united arab emirates":   "AE",
	"united kingdom":         "GB",
	"united states":          "US",
	"uruguay":                "UY",
	"uzbekistan":             "UZ",
	"venezuela":              "VE",
	"vietnam":                "VN",
	"zambia":                 "ZM",
	"zimbabwe":               "ZW",
}

// aliases folds the shorthand and legacy spellings seen in sign-up data
// onto the canonical names above. Keys are pre-normalized.
var aliases = map[string]string{
	"america":                  "united states",
	"bosnia":                   "bosnia and herzegovina",
	"brasil":                   "brazil",
	"britain":                  "united kingdom",
	"cote d'ivoire":            "ivory coast",
	"côte d'ivoire":            "ivory coast",
	"czech republic":           "czechia",
	"emirates":                 "united arab emirates",
	"england":                  "united kingdom",
	"great britain":            "united kingdom",
	"holland":                  "netherlands",
	"korea":                    "south korea",
	"korea republic of":        "south korea",
	"macedonia":                "north macedonia",
	"méxico":                   "mexico",
	"republic of korea":        "south korea",
	"russian federation":       "russia",
	"scotland":                 "united kingdom",
	"the netherlands":          "netherlands",
	"turkiye":                  "turkey",
	"türkiye":                  "turkey",
	"uae":                      "united arab emirates",
	"uk":                       "united kingdom",
	"united states of america": "united states",
	"us":                       "united states",
	"usa":                      "united states",
	"viet nam":                 "vietnam",
	"wales":                    "united kingdom",
}
