// Package gazetteer holds reference tables of Serbian administrative
// geography and government institutions, with heuristics for recognizing
// place names, addresses and institutional publishers in dataset content.
package gazetteer

import (
	"regexp"
	"strings"
)

// Municipalities of the Republic of Serbia (Latin spelling), grouped by
// okrug in source order.
var municipalities = map[string]bool{}

func init() {
	for _, name := range municipalityList {
		municipalities[name] = true
	}
}

var municipalityList = []string{
	// Grad Beograd
	"Beograd", "Novi Beograd", "Palilula", "Rakovica", "Savski Venac",
	"Stari Grad", "Voždovac", "Vračar", "Zemun", "Zvezdara", "Barajevo",
	"Grocka", "Lazarevac", "Mladenovac", "Obrenovac", "Sopot", "Surčin",
	// Banat
	"Ada", "Kikinda", "Kovačica", "Novi Kneževac", "Nova Crnja", "Senta",
	"Kanjiža", "Čoka", "Plandište", "Alibunar", "Vršac", "Bela Crkva",
	"Sečanj", "Žitište", "Zrenjanin", "Novi Bečej", "Pančevo", "Opovo",
	"Kovin",
	// Bačka
	"Žabalj", "Srbobran", "Bačka Topola", "Mali Iđoš", "Kula", "Odžaci",
	"Bačka Palanka", "Sombor", "Apatin", "Subotica", "Temerin", "Bečej",
	"Novi Sad", "Bački Petrovac", "Beočin", "Titel", "Vrbas",
	// Srem
	"Irig", "Sremski Karlovci", "Sremska Mitrovica", "Stara Pazova",
	"Šid", "Inđija", "Pećinci", "Ruma",
	// Mačvanski okrug
	"Šabac", "Bogatić", "Koceljeva", "Krupanj", "Ljubovija", "Loznica",
	"Mali Zvornik", "Vladimirci",
	// Kolubarski okrug
	"Valjevo", "Lajkovac", "Ljig", "Mionica", "Osečina", "Ub",
	// Podunavski i Braničevski okrug
	"Smederevo", "Smederevska Palanka", "Velika Plana", "Požarevac",
	"Žabari", "Žagubica", "Kostolac", "Petrovac na Mlavi", "Kučevo",
	"Veliko Gradište", "Golubac",
	// Šumadijski okrug
	"Kragujevac", "Aranđelovac", "Batočina", "Knić", "Lapovo", "Rača",
	"Topola",
	// Rasinski okrug
	"Kruševac", "Aleksandrovac", "Brus", "Varvarin", "Ćićevac", "Trstenik",
	// Pomoravski okrug
	"Ćuprija", "Despotovac", "Jagodina", "Paraćin", "Rekovac", "Svilajnac",
	// Borski i Zaječarski okrug
	"Bor", "Kladovo", "Majdanpek", "Negotin", "Zaječar", "Boljevac",
	"Knjaževac", "Sokobanja",
	// Zlatiborski okrug
	"Užice", "Arilje", "Bajina Bašta", "Kosjerić", "Nova Varoš", "Požega",
	"Priboj", "Prijepolje", "Sjenica", "Čajetina",
	// Moravički okrug
	"Čačak", "Gornji Milanovac", "Ivanjica", "Lučani",
	// Raški okrug
	"Kraljevo", "Vrnjačka Banja", "Novi Pazar", "Raška", "Tutin",
	// Nišavski, Toplički, Pirotski okrug
	"Niš", "Aleksinac", "Svrljig", "Merošina", "Gadžin Han", "Doljevac",
	"Bela Palanka", "Pirot", "Babušnica", "Prokuplje", "Blace",
	"Kuršumlija", "Žitorađa", "Dimitrovgrad",
	// Jablanički i Pčinjski okrug
	"Leskovac", "Bojnik", "Vlasotince", "Lebane", "Crna Trava", "Medveđa",
	"Vranje", "Bujanovac", "Vladičin Han", "Surdulica", "Bosilegrad",
	"Trgovište",
	// Kosovo i Metohija
	"Priština", "Kosovska Mitrovica", "Peć", "Đakovica", "Prizren",
	"Kosovo Polje", "Uroševac", "Glogovac", "Lipljan", "Vučitrn",
	"Orahovac", "Novo Brdo", "Kačanik", "Štimlje", "Štrpce", "Dečani",
	"Zvečan", "Leposavić", "Zubin Potok", "Istok", "Srbica", "Vitina",
	"Klina", "Gnjilane", "Kosovska Kamenica", "Ranilug",
}

// StatisticalRegions are the NUTS-2 level regions of Serbia.
var StatisticalRegions = []string{
	"Beograd",
	"Vojvodina",
	"Šumadija i Zapadna Srbija",
	"Južna i Istočna Srbija",
	"Kosovo i Metohija",
}

// GovernmentInstitutions lists the central state bodies recognized as
// dataset publishers.
var GovernmentInstitutions = []string{
	"Narodna skupština Republike Srbije",
	"Vlada Republike Srbije",
	"Predsednik Republike Srbije",
	"Ustavni sud Republike Srbije",
	"Narodna banka Srbije",
	"Republički zavod za statistiku",
	"Ministarstvo finansija",
	"Ministarstvo unutrašnjih poslova",
	"Ministarstvo zdravlja",
	"Ministarstvo prosvete",
	"Ministarstvo privrede",
}

// institutionKeywords flag generic government bodies in either script.
var institutionKeywords = []string{
	"ministarstvo", "republika", "srbija", "zavod", "agencija", "uprava",
	"direktorat", "sekretarijat", "odbor", "komisija",
	"министарство", "република", "србија", "управа", "завод", "агенција",
}

// IsMunicipality reports whether name is a Serbian municipality
// (case-sensitive Latin spelling, surrounding space ignored).
func IsMunicipality(name string) bool {
	return municipalities[strings.TrimSpace(name)]
}

// MunicipalityMentions returns every municipality whose name occurs in
// text, case-insensitively.
func MunicipalityMentions(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, name := range municipalityList {
		if strings.Contains(lower, strings.ToLower(name)) {
			found = append(found, name)
		}
	}
	return found
}

// MentionsRegion reports whether text names one of the statistical
// regions or the republic itself.
func MentionsRegion(text string) bool {
	lower := strings.ToLower(text)
	for _, region := range StatisticalRegions {
		if strings.Contains(lower, strings.ToLower(region)) {
			return true
		}
	}
	// Stemmed so the oblique cases (Srbije, Srbiji) match too.
	return strings.Contains(lower, "srbij") || strings.Contains(lower, "срби")
}

// DetectInstitutions returns the official institutions named in text plus
// a generic marker when institutional keywords appear without a full name.
func DetectInstitutions(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, inst := range GovernmentInstitutions {
		if strings.Contains(lower, strings.ToLower(inst)) {
			found = append(found, inst)
		}
	}
	if len(found) == 0 {
		for _, kw := range institutionKeywords {
			if strings.Contains(lower, kw) {
				found = append(found, "Government Institution Detected")
				break
			}
		}
	}
	return found
}

var addressPatterns = []*regexp.Regexp{
	// Ulica broj: "Nemanjina 11", "Bulevar Kralja Aleksandra 73A"
	regexp.MustCompile(`^[A-ZČĆŽŠĐ][a-zčćžšđ]+(?:\s+[A-ZČĆŽŠĐa-zčćžšđ]+)*\s+\d+[A-Z]?$`),
	// Bez broja: "Partizanska bb"
	regexp.MustCompile(`^[A-ZČĆŽŠĐ][a-zčćžšđ]+(?:\s+[A-ZČĆŽŠĐa-zčćžšđ]+)*\s+bb\.?$`),
	// Cyrillic street and number
	regexp.MustCompile(`^[А-ШЂЈЉЊЋЏ][а-шђјљњћџ]+(?:\s+[А-ШЂЈЉЊЋЏа-шђјљњћџ]+)*\s+\d+[А-ШЂЈЉЊЋЏ]?$`),
}

// Stems, so "ulici"/"ulice" match as well.
var streetKeywords = []string{"ulic", "bulevar", "улиц", "булевар"}

// ScoreAddress rates how well a string matches Serbian address format:
// 1.0 for a full pattern match, 0.7 when a street keyword is present,
// 0.5 when the string at least carries a number, 0.2 otherwise, 0 for
// empty input.
func ScoreAddress(address string) float64 {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return 0
	}
	for _, p := range addressPatterns {
		if p.MatchString(trimmed) {
			return 1.0
		}
	}
	lower := strings.ToLower(trimmed)
	for _, kw := range streetKeywords {
		if strings.Contains(lower, kw) {
			return 0.7
		}
	}
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			return 0.5
		}
	}
	return 0.2
}
