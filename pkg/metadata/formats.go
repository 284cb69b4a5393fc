// pkg/metadata/formats.go
package metadata

import "strings"

// formatMIME maps common format labels, as found in portal exports, onto
// canonical MIME types.
var formatMIME = map[string]string{
	"csv":     "text/csv",
	"json":    "application/json",
	"xml":     "application/xml",
	"xls":     "application/vnd.ms-excel",
	"xlsx":    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ods":     "application/vnd.oasis.opendocument.spreadsheet",
	"pdf":     "application/pdf",
	"txt":     "text/plain",
	"html":    "text/html",
	"zip":     "application/zip",
	"rdf":     "application/rdf+xml",
	"geojson": "application/geo+json",
}

// euFileTypePrefix is the EU Publications Office file-type authority.
const euFileTypePrefix = "http://publications.europa.eu/resource/authority/file-type/"

// euFileTypes maps the authority's notation onto MIME types. Only the
// notations seen in Serbian open data exports are listed.
var euFileTypes = map[string]string{
	"CSV":  "text/csv",
	"JSON": "application/json",
	"XML":  "application/xml",
	"XLS":  "application/vnd.ms-excel",
	"XLSX": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ODS":  "application/vnd.oasis.opendocument.spreadsheet",
	"PDF":  "application/pdf",
	"TXT":  "text/plain",
	"HTML": "text/html",
	"ZIP":  "application/zip",
	"RDF":  "application/rdf+xml",
}

// NormalizeFormat converts a free-form format label, an EU file-type
// authority URI, or an already-canonical MIME type into a MIME type.
// Unknown labels are returned lowercased so the caller can still compare
// them.
func NormalizeFormat(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, euFileTypePrefix) {
		notation := strings.TrimPrefix(s, euFileTypePrefix)
		if mime, ok := euFileTypes[strings.ToUpper(notation)]; ok {
			return mime
		}
		return strings.ToLower(notation)
	}
	if strings.Contains(s, "/") {
		// Already a MIME type.
		return strings.ToLower(s)
	}
	lower := strings.ToLower(strings.TrimPrefix(s, "."))
	if mime, ok := formatMIME[lower]; ok {
		return mime
	}
	return lower
}
