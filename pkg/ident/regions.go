// pkg/ident/regions.go

package ident

// jmbgRegions maps the two region digits of a JMBG onto the political
// region in force when the scheme was introduced. Serbia-proper codes are
// listed individually; the other ex-Yugoslav republics are kept as coarse
// buckets since their sub-codes do not concern Serbian datasets.
var jmbgRegions = map[int]string{
	// 01-09: naturalized citizens / foreigners
	1: "Inostranstvo", 2: "Inostranstvo", 3: "Inostranstvo",
	4: "Inostranstvo", 5: "Inostranstvo", 6: "Inostranstvo",
	7: "Inostranstvo", 8: "Inostranstvo", 9: "Inostranstvo",

	// Central Serbia
	70: "Srbija - ostalo",
	71: "Beograd",
	72: "Šumadija i Pomoravlje",
	73: "Niš",
	74: "Južna Morava",
	75: "Zaječar",
	76: "Podunavlje",
	77: "Podrinje i Kolubara",
	78: "Kraljevo",
	79: "Užice",

	// Vojvodina
	80: "Novi Sad",
	81: "Sombor",
	82: "Subotica",
	84: "Kikinda",
	85: "Zrenjanin",
	86: "Pančevo",
	87: "Vršac",
	88: "Ruma",
	89: "Sremska Mitrovica",

	// Kosovo i Metohija
	90: "Priština",
	91: "Kosovska Mitrovica",
	92: "Peć",
	93: "Đakovica",
	94: "Prizren",
	95: "Kosovsko Pomoravlje",
}

func regionName(code int) string {
	if name, ok := jmbgRegions[code]; ok {
		return name
	}
	switch {
	case code >= 10 && code <= 19:
		return "Bosna i Hercegovina"
	case code >= 20 && code <= 29:
		return "Crna Gora"
	case code >= 30 && code <= 39:
		return "Hrvatska"
	case code >= 40 && code <= 49:
		return "Makedonija"
	case code >= 50 && code <= 59:
		return "Slovenija"
	default:
		return "Nepoznat region"
	}
}
