package meitav

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// legalSuffixes are the Unicode spellings of בע"מ that appear in Meitav
// statements. The document mixes them unpredictably, so every variant is
// listed instead of normalizing quotes.
var legalSuffixes = []string{
	"בע\"מ", // ASCII quote
	"בע״מ",  // U+05F4 Hebrew gershayim
	"בע”מ",  // U+201D right double quote
	"בע“מ",  // U+201C left double quote
}

var (
	depositDateRe = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	monthYearRe   = regexp.MustCompile(`\d{1,2}/\d{4}`)
	// month/year token ending exactly where the deposit date begins
	adjacentMonthRe = regexp.MustCompile(`\d{1,2}/\d{4}$`)
	amountRe        = regexp.MustCompile(`\d{1,3}(?:,\d{3})+|\d+`)
	// one or more Hebrew words followed by a legal-entity suffix
	employerRe = regexp.MustCompile(`(?:[\p{Hebrew}][\p{Hebrew}'׳־.-]* )+(?:` + strings.Join(legalSuffixes, "|") + `)`)
)

// parseDepositDate parses a DD/MM/YYYY token into a UTC-midnight date.
// time.Parse rejects impossible calendar dates (31/02, month 13).
func parseDepositDate(s string) (time.Time, bool) {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseSalaryMonth parses an MM/YYYY token into the 1st of that month,
// UTC midnight.
func parseSalaryMonth(s string) (time.Time, bool) {
	t, err := time.Parse("1/2006", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// findDepositDate locates the leftmost full date token in the line.
func findDepositDate(line string) (t time.Time, start int, ok bool) {
	loc := depositDateRe.FindStringIndex(line)
	if loc == nil {
		return time.Time{}, 0, false
	}
	t, ok = parseDepositDate(line[loc[0]:loc[1]])
	return t, loc[0], ok
}

// findFirstAmount scans a span for grouped-digit number tokens and parses
// the first one in reading order. Zero or negative values count as not
// found rather than as a valid amount.
func findFirstAmount(span string) (decimal.Decimal, bool) {
	m := amountRe.FindString(span)
	if m == "" {
		return decimal.Decimal{}, false
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
	if err != nil || !v.IsPositive() {
		return decimal.Decimal{}, false
	}
	return v, true
}

// findEmployer extracts a Hebrew company name anchored on its legal
// suffix. The suffix marker alone, with no name words before it, does
// not count as a name.
func findEmployer(line string) (string, bool) {
	m := employerRe.FindString(line)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

func containsLegalSuffix(s string) bool {
	for _, suffix := range legalSuffixes {
		if strings.Contains(s, suffix) {
			return true
		}
	}
	return false
}
