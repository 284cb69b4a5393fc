// Package locale formats and parses dates and numbers by Serbian
// convention: day-first dates with a trailing period, decimal comma and
// period thousands separator, with name tables in both scripts.
package locale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"

	"github.com/datagovrs/standards/pkg/script"
)

// DateStyle selects the rendering of a Serbian date.
type DateStyle string

const (
	StyleShort  DateStyle = "short"  // 15.03.2024.
	StyleMedium DateStyle = "medium" // 15. mar 2024.
	StyleLong   DateStyle = "long"   // 15. mart 2024.
	StyleFull   DateStyle = "full"   // petak, 15. mart 2024. godine
)

var monthsCyrillic = [12]string{
	"јануар", "фебруар", "март", "април", "мај", "јун",
	"јул", "август", "септембар", "октобар", "новембар", "децембар",
}

var monthsLatin = [12]string{
	"januar", "februar", "mart", "april", "maj", "jun",
	"jul", "avgust", "septembar", "oktobar", "novembar", "decembar",
}

var weekdaysCyrillic = [7]string{
	"недеља", "понедељак", "уторак", "среда", "четвртак", "петак", "субота",
}

var weekdaysLatin = [7]string{
	"nedelja", "ponedeljak", "utorak", "sreda", "četvrtak", "petak", "subota",
}

// FormatDate renders t per Serbian convention. An invalid (zero) time
// yields a localized error string rather than panicking, so formatted
// output stays printable end to end.
func FormatDate(t time.Time, style DateStyle, scr script.Script) string {
	if t.IsZero() {
		if scr == script.Cyrillic {
			return "неважећи датум"
		}
		return "nevažeći datum"
	}

	months := monthsLatin
	weekdays := weekdaysLatin
	yearWord := "godine"
	if scr == script.Cyrillic {
		months = monthsCyrillic
		weekdays = weekdaysCyrillic
		yearWord = "године"
	}

	month := months[t.Month()-1]
	switch style {
	case StyleMedium:
		abbrev := month
		if len([]rune(abbrev)) > 3 {
			abbrev = string([]rune(abbrev)[:3])
		}
		return fmt.Sprintf("%d. %s %d.", t.Day(), abbrev, t.Year())
	case StyleLong:
		return fmt.Sprintf("%d. %s %d.", t.Day(), month, t.Year())
	case StyleFull:
		return fmt.Sprintf("%s, %d. %s %d. %s", weekdays[t.Weekday()], t.Day(), month, t.Year(), yearWord)
	default:
		return fmt.Sprintf("%02d.%02d.%d.", t.Day(), t.Month(), t.Year())
	}
}

var (
	dottedDatePattern = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})\.?$`)
	namedDatePattern  = regexp.MustCompile(`^(\d{1,2})\.\s*([\p{L}]+)\s+(\d{4})\.?(\s+(?:године|godine))?$`)
	isoDatePattern    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	slashDatePattern  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// ParseDate attempts the accepted Serbian date forms in fixed priority
// order: dd.MM.yyyy. then "d. MMMM yyyy. године/godine" then ISO
// yyyy-MM-dd then dd/MM/yyyy. The first successful parse wins.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, cerr.New("empty date string")
	}

	if m := dottedDatePattern.FindStringSubmatch(s); m != nil {
		return calendarDate(m[3], m[2], m[1])
	}
	if m := namedDatePattern.FindStringSubmatch(s); m != nil {
		month, ok := monthNumber(m[2])
		if !ok {
			return time.Time{}, cerr.Newf("unknown month name %q", m[2])
		}
		return calendarDate(m[3], strconv.Itoa(month), m[1])
	}
	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		return calendarDate(m[1], m[2], m[3])
	}
	if m := slashDatePattern.FindStringSubmatch(s); m != nil {
		return calendarDate(m[3], m[2], m[1])
	}
	return time.Time{}, cerr.Newf("unrecognized date format %q", s)
}

// calendarDate builds a UTC date and rejects values the calendar rolls
// over (e.g. 31.02.).
func calendarDate(year, month, day string) (time.Time, error) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return time.Time{}, cerr.Newf("date out of range: %s.%s.%s", day, month, year)
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != mo || t.Year() != y {
		return time.Time{}, cerr.Newf("no such calendar date: %s.%s.%s", day, month, year)
	}
	return t, nil
}

func monthNumber(name string) (int, bool) {
	lower := strings.ToLower(name)
	for i := range monthsLatin {
		if lower == monthsLatin[i] || lower == monthsCyrillic[i] {
			return i + 1, true
		}
	}
	return 0, false
}
