// Package meitav recovers structured pension-deposit records from the
// plain text of a Meitav statement PDF. Text extraction strips the table
// layout, leaving each row's columns (total, severance, employer share,
// employee share, salary, salary month, deposit date, employer name)
// concatenated without delimiters; the parser re-segments them using
// locally distinctive token patterns instead of column geometry.
package meitav

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pensionbox/meitav-import/dto"
)

// Parse extracts every recoverable deposit row from statement text.
// It never panics or returns an error: all failure modes, from a wrong
// provider to individual unreadable rows, are reported inside the result.
func Parse(text string) dto.ParseResult {
	text = normalize(text)
	result := dto.ParseResult{}

	result.ProviderName = DetectProvider(text)
	if reportDate, ok := ExtractReportDate(text); ok {
		result.ReportDate = &reportDate
	}
	if memberName, ok := ExtractMemberName(text); ok {
		result.MemberName = memberName
	}

	if result.ProviderName != ProviderName {
		result.Errors = append(result.Errors, "document is not a recognized Meitav statement")
		return result
	}

	for i, line := range splitLines(text) {
		deposit, err := extractRow(line)
		if err != nil {
			if !errors.Is(err, errNotDataRow) {
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", i+1, err))
			}
			continue
		}
		if deposit.Employer == dto.UnknownEmployer {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: employer name not recognized", i+1))
		}
		result.Deposits = append(result.Deposits, *deposit)
	}

	// newest payroll month first; source order breaks ties
	sort.SliceStable(result.Deposits, func(i, j int) bool {
		return result.Deposits[i].SalaryMonth.After(result.Deposits[j].SalaryMonth)
	})

	result.Success = len(result.Deposits) > 0
	if !result.Success && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "no deposits found in statement")
	}
	return result
}

func normalize(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// splitLines turns statement text into the ordered line sequence the row
// extractor walks. Nothing is dropped here; filtering is the row
// classifier's job.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
