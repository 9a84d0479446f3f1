// Package normalize converts the loosely formatted text fields coming out of
// the spreadsheet tabs (currency strings, hand-typed date/times) into
// canonical values, and formats canonical values back into the display shapes
// the brokers expect.
package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"charter/shared/timezone"
)

var (
	amountCleaner = strings.NewReplacer("$", "", ",", "")

	// The sheet cells are pasted from chat threads and mail clients, so the
	// repairs below are a closed list of the malformations seen in practice:
	// smart quotes (and their UTF-8-as-latin1 mangling), plain quotes,
	// doubled whitespace, trailing punctuation, and a comma directly after a
	// 4-digit year which breaks layout matching.
	quoteCleaner   = strings.NewReplacer("‚Äô", "", "’", "", "‘", "", "“", "", "”", "", `"`, "", "'", "")
	spaceCollapser = regexp.MustCompile(`\s+`)
	trailingComma  = regexp.MustCompile(`,\s*$`)
	yearComma      = regexp.MustCompile(`(\d{4})\s*,\s*`)
)

// instantLayouts is the fixed set of layouts a repaired cell may match.
// Anything outside this list is a parse failure, not a candidate for further
// leniency.
var instantLayouts = []string{
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 15:04",
	"Jan 2 2006 3:04 PM",
	"Jan 2 2006 15:04",
	"January 2, 2006 3:04 PM",
	"January 2 2006 3:04 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"1/2/2006",
}

// DisplayInstantFormat is the human shape of reservation timestamps,
// e.g. "Mar 10, 2025 7:00 PM".
const DisplayInstantFormat = "Jan 02, 2006 3:04 PM"

// Amount strips currency symbols and thousands separators and converts the
// remainder to a number. Absent or unparseable input yields 0, never an
// error. Callers comparing against budget bounds must keep in mind that a 0
// may mean "missing data", not "free".
func Amount(raw string) float64 {
	cleaned := strings.TrimSpace(amountCleaner.Replace(raw))
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return value
}

// FormatAmount renders a normalized amount back into the "$#,###" display
// shape used across the catalog. Zero renders empty, matching the sheet's
// blank-cell convention for missing prices.
func FormatAmount(value float64) string {
	if value == 0 {
		return ""
	}

	if value == math.Trunc(value) {
		return "$" + groupThousands(strconv.FormatInt(int64(value), 10))
	}

	formatted := strconv.FormatFloat(value, 'f', 2, 64)
	parts := strings.SplitN(formatted, ".", 2)

	return "$" + groupThousands(parts[0]) + "." + parts[1]
}

// Instant repairs a loosely formatted date/time cell and parses it in the
// application timezone. The returned error means the cell stayed outside the
// recognized layouts even after repair; callers log it and skip the row.
func Instant(raw string) (time.Time, error) {
	repaired := Repair(raw)
	if repaired == "" {
		return time.Time{}, fmt.Errorf("empty date/time value")
	}

	for _, layout := range instantLayouts {
		if t, err := timezone.Parse(layout, repaired); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date/time value %q", raw)
}

// Repair applies the fixed textual repair sequence without parsing. Exposed
// separately so the repairs stay independently testable.
func Repair(raw string) string {
	s := strings.TrimSpace(raw)
	s = quoteCleaner.Replace(s)
	s = trailingComma.ReplaceAllString(s, "")
	s = spaceCollapser.ReplaceAllString(s, " ")
	s = yearComma.ReplaceAllString(s, "$1 ")

	return strings.TrimSpace(s)
}

// FormatInstant renders a reservation timestamp for display.
func FormatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, DisplayInstantFormat)
}

// Midnight truncates an instant to 00:00 of its calendar day in the
// application timezone. All availability comparisons happen at this
// granularity.
func Midnight(t time.Time) time.Time {
	local := timezone.ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, timezone.GetLocation())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

func groupThousands(digits string) string {
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-" + b.String()
	}

	return b.String()
}
