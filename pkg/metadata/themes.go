// pkg/metadata/themes.go
package metadata

import (
	"sort"
	"strings"
)

// euThemePrefix is the EU data-theme authority used by DCAT-AP catalogs.
const euThemePrefix = "http://publications.europa.eu/resource/authority/data-theme/"

// themeNames carries bilingual labels for the EU data-theme codes in use
// on the Serbian portal.
var themeNames = map[string]MultilingualText{
	"EDUC": {"sr": "Obrazovanje, kultura i sport", "en": "Education, culture and sport"},
	"ECON": {"sr": "Ekonomija i finansije", "en": "Economy and finance"},
	"SOCI": {"sr": "Stanovništvo i društvo", "en": "Population and society"},
	"GOVE": {"sr": "Vlada i javni sektor", "en": "Government and public sector"},
	"HEAL": {"sr": "Zdravlje", "en": "Health"},
	"ENVI": {"sr": "Životna sredina", "en": "Environment"},
	"TRAN": {"sr": "Saobraćaj", "en": "Transport"},
	"AGRI": {"sr": "Poljoprivreda, ribarstvo i šumarstvo", "en": "Agriculture, fisheries and forestry"},
	"JUST": {"sr": "Pravosuđe i javna bezbednost", "en": "Justice and public safety"},
	"REGI": {"sr": "Regioni i gradovi", "en": "Regions and cities"},
	"ENER": {"sr": "Energetika", "en": "Energy"},
	"TECH": {"sr": "Nauka i tehnologija", "en": "Science and technology"},
}

// themeKeywords maps stems found in titles, descriptions and keywords
// onto theme codes. Stems match both scripts and oblique cases.
var themeKeywords = map[string][]string{
	"EDUC": {"obrazovanj", "образовањ", "škol", "школ", "учен", "učen", "fakultet", "факултет", "kultur", "култур", "sport", "спорт"},
	"ECON": {"budžet", "буџет", "finansij", "финансиј", "ekonomij", "економиј", "plat", "плат", "porez", "порез", "privred", "привред"},
	"SOCI": {"stanovništv", "становништв", "popis", "попис", "demografij", "демографиј", "socijaln", "социјалн"},
	"GOVE": {"uprav", "управ", "ministarstv", "министарств", "opštin", "општин", "javne nabavke", "јавне набавке", "registar", "регистар"},
	"HEAL": {"zdravlj", "здравл", "bolnic", "болниц", "lekar", "лекар", "vakcin", "вакцин", "dom zdravlja", "дом здравља"},
	"ENVI": {"zagađenj", "загађењ", "vazduh", "ваздух", "otpad", "отпад", "životn", "животн", "reciklaž", "рециклаж"},
	"TRAN": {"saobraćaj", "саобраћај", "prevoz", "превоз", "putev", "путев", "železnic", "железниц", "autobus", "аутобус"},
	"AGRI": {"poljoprivred", "пољопривред", "usev", "усев", "stočarstv", "сточарств", "šum", "шум", "ribarstv", "рибарств"},
	"JUST": {"sud", "суд", "pravosuđ", "правосуђ", "kriminal", "криминал", "policij", "полициј", "prekršaj", "прекршај"},
	"ENER": {"energi", "енерги", "struj", "струј", "elektran", "електран", "gas", "гас"},
	"TECH": {"nauk", "наук", "istraživanj", "истраживањ", "tehnologij", "технологиј", "inovacij", "иновациј"},
}

// ThemeFromCode builds a Theme from an EU authority code or URI,
// attaching bilingual names when the code is known.
func ThemeFromCode(code string) Theme {
	c := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(code), euThemePrefix))
	th := Theme{Code: c}
	if name, ok := themeNames[c]; ok {
		th.Name = name.Clone()
	}
	return th
}

// InferTheme scores every known theme against the given text by counting
// keyword stem hits and returns the best match. ok is false when nothing
// matched.
func InferTheme(text string) (Theme, bool) {
	lower := strings.ToLower(text)
	bestCode, bestHits := "", 0
	codes := make([]string, 0, len(themeKeywords))
	for code := range themeKeywords {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		hits := 0
		for _, stem := range themeKeywords[code] {
			if strings.Contains(lower, stem) {
				hits++
			}
		}
		if hits > bestHits {
			bestCode, bestHits = code, hits
		}
	}
	if bestCode == "" {
		return Theme{}, false
	}
	return ThemeFromCode(bestCode), true
}
