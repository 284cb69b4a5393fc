// pkg/compliance/evidence.go
package compliance

import (
	"sort"
	"strings"
	"time"

	"github.com/datagovrs/standards/pkg/metadata"
)

func evidenceDate(t time.Time) string {
	if t.IsZero() {
		return "not declared"
	}
	return t.Format("2006-01-02")
}

func titleLanguages(meta *metadata.SerbianMetadataSchema) string {
	if len(meta.Title) == 0 {
		return "none"
	}
	tags := make([]string, 0, len(meta.Title))
	for tag := range meta.Title {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return strings.Join(tags, ", ")
}

func contactEvidence(meta *metadata.SerbianMetadataSchema) string {
	if meta.ContactPoint == nil {
		return "no contact point"
	}
	if meta.ContactPoint.Email != "" {
		return "email " + meta.ContactPoint.Email
	}
	return "contact " + meta.ContactPoint.Name
}

// metaText joins the free-text surface of a record for keyword style
// checks.
func metaText(meta *metadata.SerbianMetadataSchema) string {
	parts := []string{meta.Title.Preferred(), meta.Description.Preferred(), meta.Spatial}
	parts = append(parts, meta.Keywords...)
	return strings.Join(parts, " ")
}
