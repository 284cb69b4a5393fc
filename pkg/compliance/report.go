// pkg/compliance/report.go
//
// Human-readable compliance report rendering. The report is bilingual
// because its audiences differ: dataset stewards in public institutions
// read Serbian, the EU-level reviewers read English.
package compliance

import (
	"fmt"
	"strings"
)

// HumanSection is one category rendered for people.
type HumanSection struct {
	TitleSr  string   `json:"titleSr"`
	TitleEn  string   `json:"titleEn"`
	Score    float64  `json:"score"`
	StatusSr string   `json:"statusSr"`
	StatusEn string   `json:"statusEn"`
	Findings []string `json:"findings"`
}

// HumanReport is a rendered compliance verdict with legal context and
// concrete next steps. It is derived from an existing ComplianceReport
// and never re-validates.
type HumanReport struct {
	TitleSr           string         `json:"titleSr"`
	TitleEn           string         `json:"titleEn"`
	DatasetIdentifier string         `json:"datasetIdentifier"`
	SummarySr         string         `json:"summarySr"`
	SummaryEn         string         `json:"summaryEn"`
	OverallScore      float64        `json:"overallScore"`
	StatusSr          string         `json:"statusSr"`
	StatusEn          string         `json:"statusEn"`
	Sections          []HumanSection `json:"sections"`
	LegalReferences   []string       `json:"legalReferences"`
	NextSteps         []string       `json:"nextSteps"`
}

var categoryTitles = map[string][2]string{
	"metadata_completeness": {"Potpunost metapodataka", "Metadata completeness"},
	"accessibility":         {"Pristupačnost", "Accessibility"},
	"language_compliance":   {"Jezička usklađenost", "Language compliance"},
	"data_quality":          {"Kvalitet podataka", "Data quality"},
	"geographic_coverage":   {"Geografska pokrivenost", "Geographic coverage"},
	"temporal_coverage":     {"Vremenska pokrivenost", "Temporal coverage"},
}

var statusLabels = map[string][2]string{
	StatusCompliant:          {"usklađen", "compliant"},
	StatusPartiallyCompliant: {"delimično usklađen", "partially compliant"},
	StatusNonCompliant:       {"neusklađen", "non-compliant"},
}

// legalReferences anchors the report in the regulations that make open
// data publication mandatory for Serbian institutions.
var legalReferences = []string{
	"Zakon o elektronskoj upravi (Sl. glasnik RS, br. 27/2018)",
	"Zakon o slobodnom pristupu informacijama od javnog značaja (Sl. glasnik RS, br. 120/2004)",
	"Uredba o bližim uslovima za ponovnu upotrebu podataka (Sl. glasnik RS, br. 104/2018)",
	"Strategija razvoja elektronske uprave Republike Srbije",
}

// GenerateComplianceReport renders an existing report for human readers.
func GenerateComplianceReport(report *ComplianceReport) *HumanReport {
	statusSr, statusEn := statusLabel(report.Status)

	h := &HumanReport{
		TitleSr:           "Izveštaj o usklađenosti skupa podataka",
		TitleEn:           "Dataset Compliance Report",
		DatasetIdentifier: report.DatasetIdentifier,
		SummarySr:         fmt.Sprintf("Skup podataka je ocenjen sa %.0f/100 i %s je sa standardima otvorenih podataka.", report.OverallScore, statusSr),
		SummaryEn:         fmt.Sprintf("The dataset scored %.0f/100 and is %s with open data standards.", report.OverallScore, statusEn),
		OverallScore:      report.OverallScore,
		StatusSr:          statusSr,
		StatusEn:          statusEn,
		LegalReferences:   legalReferences,
	}

	for _, cat := range report.Categories {
		titles, ok := categoryTitles[cat.Name]
		if !ok {
			titles = [2]string{cat.Name, cat.Name}
		}
		catSr, catEn := statusLabel(cat.Status)
		section := HumanSection{
			TitleSr:  titles[0],
			TitleEn:  titles[1],
			Score:    cat.Score,
			StatusSr: catSr,
			StatusEn: catEn,
		}
		for _, req := range cat.Requirements {
			if req.Status == StatusPass {
				continue
			}
			section.Findings = append(section.Findings, fmt.Sprintf("%s: %s (%s)", req.Name, req.Status, req.Evidence))
		}
		h.Sections = append(h.Sections, section)
	}

	// Most severe actions first.
	for _, recType := range []string{TypeCritical, TypeMajor, TypeMinor} {
		for _, rec := range report.Recommendations {
			if rec.Type == recType {
				h.NextSteps = append(h.NextSteps, rec.Title+": "+rec.Description)
			}
		}
	}

	return h
}

func statusLabel(status string) (sr, en string) {
	if labels, ok := statusLabels[status]; ok {
		return labels[0], labels[1]
	}
	return status, status
}

// Render produces the plain-text form handed to institutions.
func (h *HumanReport) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s / %s\n", h.TitleSr, h.TitleEn)
	fmt.Fprintf(&b, "Skup podataka / Dataset: %s\n\n", h.DatasetIdentifier)
	fmt.Fprintf(&b, "%s\n%s\n\n", h.SummarySr, h.SummaryEn)

	for _, sec := range h.Sections {
		fmt.Fprintf(&b, "%s / %s: %.0f/100 (%s / %s)\n", sec.TitleSr, sec.TitleEn, sec.Score, sec.StatusSr, sec.StatusEn)
		for _, f := range sec.Findings {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}

	if len(h.NextSteps) > 0 {
		b.WriteString("\nSledeći koraci / Next steps:\n")
		for i, step := range h.NextSteps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	b.WriteString("\nPravni okvir / Legal framework:\n")
	for _, ref := range h.LegalReferences {
		fmt.Fprintf(&b, "  - %s\n", ref)
	}

	return b.String()
}
