package meitav

import (
	"regexp"
	"strings"
	"time"
)

// ProviderName is the identity reported for recognized statements.
const ProviderName = "מיטב דש"

// providerMarker is the substring whose presence identifies the document
// as a Meitav statement.
const providerMarker = "מיטב"

var (
	reportDateRe = regexp.MustCompile(`תאריך הדוח:?\s*(\d{2}\.\d{2}\.\d{4})`)
	// member name runs until the next label word or end of line
	memberNameRe = regexp.MustCompile(`(?m)שם העמית:?[ \t]*(.+?)(?:[ \t]+תאריך|[ \t]+מספר|$)`)
)

// DetectProvider reports the provider identity, or "" when the document
// does not carry the Meitav marker.
func DetectProvider(text string) string {
	if strings.Contains(text, providerMarker) {
		return ProviderName
	}
	return ""
}

// ExtractReportDate pulls the labeled report date (DD.MM.YYYY) from the
// document text.
func ExtractReportDate(text string) (time.Time, bool) {
	m := reportDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("02.01.2006", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractMemberName pulls the labeled member name from the document text.
func ExtractMemberName(text string) (string, bool) {
	m := memberNameRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}
